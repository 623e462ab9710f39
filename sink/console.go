package sink

import (
	"strings"

	lf "github.com/sirupsen/logrus"

	"rulescan/types"
)

// Console logs every matched line through the injected logger, trimmed
// of its terminator. Interleaving across workers is expected here; the
// logger serializes individual entries.
type Console struct {
	log *lf.Entry
}

func NewConsole(log *lf.Entry) *Console {
	return &Console{log}
}

func (c *Console) Write(m *types.Match) error {
	c.log.Info(strings.TrimRight(m.Line, "\r\n"))
	return nil
}

func (c *Console) Close() error {
	return nil
}
