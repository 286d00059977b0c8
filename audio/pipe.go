package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/monodice/constant"
)

// pipeOutput streams s16le stereo frames into a CLI player's stdin or an OSS device
type pipeOutput struct {
	detect func(sampleRate int) (*BackendConfig, error)

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File

	mu   sync.Mutex // Guards root against the writer goroutine
	root beep.Streamer

	stopChan chan struct{}
	stopped  atomic.Bool
	errChan  chan error
	wg       sync.WaitGroup
}

// NewPipeOutput returns an output backed by the first detected CLI player
func NewPipeOutput() Output {
	return newPipeOutput(DetectBackend)
}

func newPipeOutput(detect func(int) (*BackendConfig, error)) *pipeOutput {
	return &pipeOutput{
		detect:   detect,
		stopChan: make(chan struct{}),
		errChan:  make(chan error, 1),
	}
}

func (p *pipeOutput) Name() string {
	if p.backend != nil {
		return p.backend.Name
	}
	return "pipe"
}

// Open detects a backend, launches it and starts the writer goroutine
func (p *pipeOutput) Open(sr beep.SampleRate, root beep.Streamer) error {
	if p.root != nil {
		return ErrOutputOpen
	}

	backend, err := p.detect(int(sr))
	if err != nil {
		return err
	}
	p.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", backend.Path, err)
		}
		p.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return fmt.Errorf("%s stdin: %w", backend.Name, err)
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			return fmt.Errorf("start %s: %w", backend.Name, err)
		}
		p.cmd = cmd
		p.stdin = stdin
		writer = stdin

		p.wg.Add(1)
		go p.monitorProcess()
	}

	p.root = root
	p.wg.Add(1)
	go p.writeLoop(writer, sr)
	return nil
}

func (p *pipeOutput) Lock()   { p.mu.Lock() }
func (p *pipeOutput) Unlock() { p.mu.Unlock() }

// Errors reports the first write or process failure
func (p *pipeOutput) Errors() <-chan error {
	return p.errChan
}

// Close stops the writer and terminates the backend; idempotent
func (p *pipeOutput) Close() error {
	if !p.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(p.stopChan)

	if p.stdin != nil {
		p.stdin.Close()
	}
	if p.ossFile != nil {
		p.ossFile.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}

	p.wg.Wait()
	return nil
}

func (p *pipeOutput) report(err error) {
	select {
	case p.errChan <- err:
	default:
	}
}

// monitorProcess watches for subprocess exit
func (p *pipeOutput) monitorProcess() {
	defer p.wg.Done()

	err := p.cmd.Wait()
	if !p.stopped.Load() {
		p.report(fmt.Errorf("%w: %s exited: %v", ErrPipeClosed, p.backend.Name, err))
	}
}

// writeLoop pulls one buffer of the master bus per tick and writes it to the pipe
func (p *pipeOutput) writeLoop(w io.Writer, sr beep.SampleRate) {
	defer p.wg.Done()

	ticker := time.NewTicker(constant.AudioBufferDuration)
	defer ticker.Stop()

	frames := sr.N(constant.AudioBufferDuration)
	mixBuf := make([][2]float64, frames)
	outBytes := make([]byte, frames*constant.AudioBytesPerFrame)

	for {
		select {
		case <-p.stopChan:
			return

		case <-ticker.C:
			p.mu.Lock()
			n, _ := p.root.Stream(mixBuf)
			p.mu.Unlock()

			// Pad short reads with silence to keep the pipe fed
			for i := n; i < len(mixBuf); i++ {
				mixBuf[i] = [2]float64{}
			}
			floatToBytes(mixBuf, outBytes)

			if _, err := w.Write(outBytes); err != nil {
				if !p.stopped.Load() {
					p.report(fmt.Errorf("%w: %v", ErrPipeClosed, err))
				}
				return
			}
		}
	}
}

// floatToBytes converts stereo float samples to interleaved int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			// Soft limiter (tanh-style)
			if v > 0.8 {
				v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
			} else if v < -0.8 {
				v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
			}

			// Hard clip
			if v > 1.0 {
				v = 1.0
			} else if v < -1.0 {
				v = -1.0
			}

			i16 := int16(v * 32767)
			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(i16))
		}
	}
}
