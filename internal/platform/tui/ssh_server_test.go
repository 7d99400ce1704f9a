package tui

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-slide/internal/config"
)

// fakeSSHSession implements the parts of ssh.Session the handler touches.
type fakeSSHSession struct {
	ssh.Session
	noPty  bool
	stderr bytes.Buffer
	exit   int
	closed bool
}

func (f *fakeSSHSession) User() string { return "ana" }

func (f *fakeSSHSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Window: ssh.Window{Width: 80, Height: 24}}, nil, !f.noPty
}

func (f *fakeSSHSession) Context() ssh.Context { return nil }

func (f *fakeSSHSession) Stderr() io.ReadWriter { return &f.stderr }

func (f *fakeSSHSession) Exit(code int) error {
	f.exit = code
	return nil
}

func (f *fakeSSHSession) Close() error {
	f.closed = true
	return nil
}

func TestTeaHandlerReportsSessionError(t *testing.T) {
	srv := &SSHServer{
		config: SSHServerConfig{Puzzle: config.PuzzleConfig{}},
		logger: log.New(io.Discard),
	}
	sshSession := &fakeSSHSession{}

	model, opts := srv.teaHandler(sshSession)

	assert.Nil(t, model)
	assert.Nil(t, opts)
	assert.Contains(t, sshSession.stderr.String(), "could not start puzzle")
	assert.Contains(t, sshSession.stderr.String(), "size_min")
	assert.Equal(t, 1, sshSession.exit)
	assert.True(t, sshSession.closed)
}

func TestTeaHandlerRequiresTerminal(t *testing.T) {
	srv := &SSHServer{
		config: SSHServerConfig{Puzzle: testConfig()},
		logger: log.New(io.Discard),
	}
	sshSession := &fakeSSHSession{noPty: true}

	model, _ := srv.teaHandler(sshSession)

	assert.Nil(t, model)
	assert.Contains(t, sshSession.stderr.String(), "needs a terminal")
	assert.True(t, sshSession.closed)
}
