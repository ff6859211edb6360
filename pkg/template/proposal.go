package template

import "strings"

// ProposalProvider offers completions for the variable token being typed in a
// pattern field.
type ProposalProvider struct {
	proposals []string
}

// NewProposalProvider creates a provider for the given proposals. With no
// arguments it offers every variable pattern.
func NewProposalProvider(proposals ...string) *ProposalProvider {
	if len(proposals) == 0 {
		proposals = Patterns()
	}
	return &ProposalProvider{proposals: proposals}
}

// Proposals returns the proposals that complete the partial token ending at
// position. When no token is being typed, every proposal is returned.
func (p *ProposalProvider) Proposals(contents string, position int) []string {
	position = clamp(position, len(contents))
	start := tokenStart(contents, position)
	if start < 0 {
		out := make([]string, len(p.proposals))
		copy(out, p.proposals)
		return out
	}
	prefix := strings.ToUpper(contents[start:position])
	var out []string
	for _, proposal := range p.proposals {
		if strings.HasPrefix(strings.ToUpper(proposal), prefix) {
			out = append(out, proposal)
		}
	}
	return out
}

// Apply inserts proposal at position, replacing any partial token before it.
// It returns the new contents and the cursor position after the insertion.
func (p *ProposalProvider) Apply(contents string, position int, proposal string) (string, int) {
	position = clamp(position, len(contents))
	start := tokenStart(contents, position)
	if start < 0 {
		start = position
	}
	return contents[:start] + proposal + contents[position:], start + len(proposal)
}

// tokenStart finds the '$' opening an unterminated token before position, or -1.
func tokenStart(contents string, position int) int {
	head := contents[:position]
	idx := strings.LastIndexByte(head, '$')
	if idx < 0 {
		return -1
	}
	if strings.ContainsAny(head[idx:], "} \t") {
		return -1
	}
	return idx
}

func clamp(position, length int) int {
	switch {
	case position < 0:
		return 0
	case position > length:
		return length
	}
	return position
}
