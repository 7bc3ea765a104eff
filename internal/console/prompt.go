package console

import (
	"bufio"
	"fmt"
	"io"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes prompt text and reads one line of input. The reader is
// owned by the caller so buffered input survives across prompts.
func Prompt(br *bufio.Reader, w io.Writer, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		_, err := w.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		input, err := br.ReadString('\n')
		if err != nil {
			return "", err
		}
		input = trimLine(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				w.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					w.Write([]byte("too many tries\n"))
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}

func trimLine(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
