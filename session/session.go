package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/pager"
	"bikeshare/prompt"
	"bikeshare/report"
)

const (
	component       = "session"
	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
)

// DataLoader returns the filtered trips of a selection
type DataLoader interface {
	Cities() []string
	Load(selection filter.Selection) (*dataset.Table, error)
}

// Publisher receives the summary of every run. It is optional.
type Publisher interface {
	Publish(ctx context.Context, summary interface{}) error
}

// Config contains the console settings of a session
type Config struct {
	PageSize       int
	SeparatorWidth int
}

// Session drives the explorer: filters, load, reports, raw data and restart, until the user stops
type Session struct {
	loader    DataLoader
	publisher Publisher
	prompter  *prompt.Prompter
	resolver  *prompt.Resolver
	printer   *report.Printer
	out       io.Writer
	config    Config
}

// NewSession returns a Session reading answers from in and writing to out. publisher may be nil.
func NewSession(loader DataLoader, publisher Publisher, in io.Reader, out io.Writer, config Config) *Session {
	prompter := prompt.NewPrompter(in, out)
	return &Session{
		loader:    loader,
		publisher: publisher,
		prompter:  prompter,
		resolver:  prompt.NewResolver(prompter, loader.Cities(), config.SeparatorWidth),
		printer:   report.NewPrinter(out, config.SeparatorWidth),
		out:       out,
		config:    config,
	}
}

func (s *Session) getLogMessage(runID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][run: %s][method: %s][status: ERROR] %s: %s", component, runID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][run: %s][method: %s][status: OK] %s", component, runID, method, message)
}

// Run repeats the exploration until the user declines to restart, the input is closed or ctx is done.
// A data load error ends the session and is returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		restart, err := s.runOnce(ctx)
		if errors.Is(err, dataErrors.ErrInputClosed) {
			log.Info(s.getLogMessage("-", "Run", "input closed, ending session", nil))
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// runOnce runs one exploration and returns true if the user wants another one
func (s *Session) runOnce(ctx context.Context) (bool, error) {
	runID := uuid.NewString()

	selection, err := s.resolver.GetFilters()
	if err != nil {
		return false, err
	}
	log.Debug(s.getLogMessage(runID, "runOnce", fmt.Sprintf("filters selected: %s", selection), nil))

	table, err := s.loader.Load(selection)
	if err != nil {
		log.Error(s.getLogMessage(runID, "runOnce", "error loading data", err))
		_ = s.printer.Message("Unable to load the %s data: %s", selection.City, err)
		return false, err
	}

	if table.IsEmpty() {
		if err := s.printer.Message("No trips match %s.", selection); err != nil {
			return false, err
		}
	}

	results := statistics.ComputeAll(table)
	if err := s.printer.Results(results); err != nil {
		return false, err
	}

	s.publish(ctx, runID, selection, table, results)

	if err := pager.NewPager(table, s.config.PageSize).Run(s.prompter, s.out); err != nil {
		return false, err
	}

	answer, err := s.prompter.Ask(restartQuestion)
	if err != nil {
		return false, err
	}
	return prompt.IsYes(answer), nil
}

// publish never fails the run, a summary that cannot be sent is only logged
func (s *Session) publish(ctx context.Context, runID string, selection filter.Selection, table *dataset.Table, results statistics.Results) {
	if s.publisher == nil {
		return
	}

	summary := statistics.NewSummary(runID, selection, table.Len(), results)
	if err := s.publisher.Publish(ctx, summary); err != nil {
		log.Warn(s.getLogMessage(runID, "publish", "summary not published", err))
		return
	}
	log.Debug(s.getLogMessage(runID, "publish", "summary published", nil))
}
