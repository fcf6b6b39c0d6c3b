// Package exoml renders the XML-like markup dialect the telephony
// provider interprets: a single <Response> envelope holding <Say> and
// <Pause> directives.
package exoml

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// ContentType identifies the rendered body to the telephony provider.
const ContentType = "application/xml"

// Node is the interface for all markup AST nodes.
type Node interface {
	isNode()
}

// Response is the root envelope element.
type Response struct {
	Children []Node
}

func (Response) isNode() {}

// Say speaks one line of text on the live call.
type Say struct {
	Text string
}

func (Say) isNode() {}

// Pause waits for the given number of seconds before the next directive.
type Pause struct {
	Length int
}

func (Pause) isNode() {}

// FromPrompt builds the envelope for a dialogue prompt: each line as a
// Say, a Pause between consecutive lines, none after the last.
func FromPrompt(p domain.DialoguePrompt) *Response {
	resp := &Response{}
	for i, line := range p.Lines {
		if i > 0 {
			resp.Children = append(resp.Children, Pause{Length: p.PauseSeconds})
		}
		resp.Children = append(resp.Children, Say{Text: line})
	}
	return resp
}

// Render serializes a dialogue prompt to the provider's wire markup. It is
// pure and total: any prompt, including an empty one, produces a
// well-formed single-root envelope.
func Render(p domain.DialoguePrompt) []byte {
	return Marshal(FromPrompt(p))
}

// Marshal serializes a Response AST. Text content is XML-escaped.
func Marshal(r *Response) []byte {
	var buf bytes.Buffer
	buf.WriteString("<Response>")
	for _, child := range r.Children {
		writeNode(&buf, child)
	}
	buf.WriteString("</Response>")
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n Node) {
	switch v := n.(type) {
	case Say:
		buf.WriteString("<Say>")
		xml.EscapeText(buf, []byte(v.Text))
		buf.WriteString("</Say>")
	case Pause:
		buf.WriteString("<Pause length='" + strconv.Itoa(v.Length) + "'/>")
	}
}
