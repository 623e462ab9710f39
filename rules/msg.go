package rules

import (
	"regexp"
)

// MsgParser pulls the msg field out of a rule line.
type MsgParser struct {
	parser *regexp.Regexp
}

func NewMsgParser() *MsgParser {
	re := regexp.MustCompile(`(?i)msg:"([^"]+)"`)
	return &MsgParser{re}
}

// Extract returns the contents of the first quoted msg field on the
// line. The msg: marker is matched case-insensitively, the contents
// come back verbatim. Lines without a msg field are a normal outcome,
// reported by the second return value.
func (p *MsgParser) Extract(line string) (string, bool) {
	parts := p.parser.FindStringSubmatch(line)
	if len(parts) != 2 {
		return "", false
	}
	return parts[1], true
}
