package cmd

import (
	log "github.com/sirupsen/logrus"
)

// cliContainer hosts a wizard page on the command line, where there are no
// buttons to update.
type cliContainer struct {
	logger *log.Entry
}

func (c cliContainer) UpdateButtons() {
	c.logger.Trace("update buttons")
}
