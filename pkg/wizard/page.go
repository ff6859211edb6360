package wizard

import (
	log "github.com/sirupsen/logrus"
)

// Page holds the state every wizard page has: its texts, the error message
// slot and whether the wizard may move past it.
type Page struct {
	title        string
	description  string
	errorMessage string
	complete     bool

	container Container
	catalog   Catalog
	logger    *log.Entry
}

func newPage(container Container, catalog Catalog, logger *log.Entry) Page {
	if catalog == nil {
		catalog = English
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return Page{container: container, catalog: catalog, logger: logger}
}

func (p *Page) Title() string {
	return p.title
}

func (p *Page) SetTitle(title string) {
	p.title = title
}

func (p *Page) Description() string {
	return p.description
}

func (p *Page) SetDescription(description string) {
	p.description = description
}

// ErrorMessage is the message currently shown on the page, empty if none.
func (p *Page) ErrorMessage() string {
	return p.errorMessage
}

func (p *Page) SetErrorMessage(msg string) {
	p.errorMessage = msg
}

// IsPageComplete as of the last completion update.
func (p *Page) IsPageComplete() bool {
	return p.complete
}

// Container hosting the page.
func (p *Page) Container() Container {
	return p.container
}

// updatePageCompletion applies the result of a completion predicate: a failure
// is shown as the error message, success clears it.
func (p *Page) updatePageCompletion(determine func() error) {
	if err := determine(); err != nil {
		p.logger.Debugf("page incomplete: %v", err)
		p.complete = false
		p.errorMessage = err.Error()
		return
	}
	p.complete = true
	p.errorMessage = ""
}

func (p *Page) updateButtons() {
	if p.container != nil {
		p.container.UpdateButtons()
	}
}
