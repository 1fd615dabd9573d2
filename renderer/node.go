package renderer

import "github.com/wippyai/cef-bridge/cef"

// Node is a snapshot of a DOM node handed to OnFocusedNodeChanged.
type Node struct {
	NodeType  cef.DOMNodeType
	Editable  bool
	NodeName  string
	NodeValue string
}

var _ cef.DOMNode = (*Node)(nil)

func (n *Node) Type() cef.DOMNodeType { return n.NodeType }
func (n *Node) IsElement() bool       { return n.NodeType == cef.DOMNodeElement }
func (n *Node) IsEditable() bool      { return n.Editable }
func (n *Node) Name() string          { return n.NodeName }
func (n *Node) Value() string         { return n.NodeValue }
