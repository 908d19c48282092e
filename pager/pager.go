package pager

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/dataset"
)

const (
	DefaultPageSize = 5

	firstQuestion = "Would you like to see the data used for this analysis? "
	moreQuestion  = "Would you like to see more data? "
	retryQuestion = "Please enter a valid input (yes or no). "
	noMoreData    = "No more data to display."
)

// Confirmer asks yes/no questions
type Confirmer interface {
	Confirm(question string, retry string) (bool, error)
}

// Pager walks the raw rows of a table, a window at a time
type Pager struct {
	table  *dataset.Table
	size   int
	offset int
}

func NewPager(table *dataset.Table, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{
		table: table,
		size:  size,
	}
}

// Next returns the next window of raw rows. The second value is false once rows are exhausted.
func (p *Pager) Next() (dataframe.DataFrame, bool) {
	window, ok := p.table.Window(p.offset, p.size)
	if !ok {
		return dataframe.DataFrame{}, false
	}
	p.offset += p.size
	return window, true
}

// Run shows windows while the user asks for them
func (p *Pager) Run(confirmer Confirmer, out io.Writer) error {
	show, err := confirmer.Confirm(firstQuestion, retryQuestion)
	if err != nil {
		return err
	}

	for show {
		window, ok := p.Next()
		if !ok {
			_, err = fmt.Fprintln(out, noMoreData)
			return err
		}

		if err = writeWindow(out, window); err != nil {
			return err
		}

		show, err = confirmer.Confirm(moreQuestion, retryQuestion)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeWindow prints every column of the window, header first, without truncating cells
func writeWindow(out io.Writer, window dataframe.DataFrame) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, record := range window.Records() {
		if _, err := fmt.Fprintln(writer, strings.Join(record, "\t")); err != nil {
			return err
		}
	}
	return writer.Flush()
}
