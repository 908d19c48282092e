package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	yes = "yes"
	no  = "no"
)

// Prompter reads answers line by line from the console
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Ask prints question and returns the next line, trimmed and lowercased.
// ErrInputClosed is returned once there is nothing left to read.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.writer, question); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return utils.NormalizeInput(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", dataErrors.ErrInputClosed
		}
		return "", err
	}

	return utils.NormalizeInput(line), nil
}

// Choose asks question until the answer is one of allowed. After an invalid answer retry is asked instead.
func (p *Prompter) Choose(question string, retry string, allowed []string) (string, error) {
	answer, err := p.Ask(question)
	for {
		if err != nil {
			return "", err
		}
		if utils.ContainsString(answer, allowed) {
			return answer, nil
		}

		log.Debugf("[component: prompt][method: Choose] %s: %q", dataErrors.ErrInvalidInput, answer)
		answer, err = p.Ask(retry)
	}
}

// Confirm asks a yes/no question until the answer is yes or no
func (p *Prompter) Confirm(question string, retry string) (bool, error) {
	answer, err := p.Choose(question, retry, []string{yes, no})
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}

// IsYes returns true only for an exact yes, case insensitive
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), yes)
}
