package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const transcribeTimeout = 2 * time.Minute

// TranscribeAudio converts an uploaded audio file to 16 kHz mono WAV with
// ffmpeg and transcribes it with Gemini. The temp directory is removed
// before returning.
func TranscribeAudio(ctx context.Context, filename string, audio []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, transcribeTimeout)
	defer cancel()

	tmpdir := filepath.Join(os.TempDir(), "battercoach_stt_"+uuid.NewString())
	if err := os.MkdirAll(tmpdir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpdir)

	inPath := filepath.Join(tmpdir, filepath.Base(filename))
	if err := os.WriteFile(inPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	// 16 kHz mono WAV keeps the payload small and is what speech models
	// expect.
	wavPath := filepath.Join(tmpdir, "out.wav")
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", inPath, "-ac", "1", "-ar", "16000", wavPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}

	wav, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to read converted audio: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText("Transcribe this audio recording. Return only the spoken words, no commentary."),
		genai.NewPartFromBytes(wav, "audio/wav"),
	}
	text, err := generateModelParts(ctx, geminiModel, parts, nil)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return text, nil
}
