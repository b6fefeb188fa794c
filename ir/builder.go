package ir

// NodeBuilder accumulates a node under construction. Build returns the
// finished node; the builder must not be reused after Build.
type NodeBuilder struct {
	node *Node
}

func NewNode(name string) *NodeBuilder {
	return &NodeBuilder{node: &Node{Name: name}}
}

func (b *NodeBuilder) WithType(t string) *NodeBuilder {
	b.node.Type = &t
	return b
}

func (b *NodeBuilder) Arg(v Value) *NodeBuilder {
	b.node.Entries = append(b.node.Entries, &Entry{Value: v})
	return b
}

func (b *NodeBuilder) Prop(key string, v Value) *NodeBuilder {
	b.node.Entries = append(b.node.Entries, &Entry{Key: &key, Value: v})
	return b
}

func (b *NodeBuilder) TypedArg(t string, v Value) *NodeBuilder {
	b.node.Entries = append(b.node.Entries, &Entry{Type: &t, Value: v})
	return b
}

func (b *NodeBuilder) TypedProp(key, t string, v Value) *NodeBuilder {
	b.node.Entries = append(b.node.Entries, &Entry{Key: &key, Type: &t, Value: v})
	return b
}

// Child appends a node to the children block, creating the block if
// needed. An empty block is made explicit with Block.
func (b *NodeBuilder) Child(c *NodeBuilder) *NodeBuilder {
	if b.node.Children == nil {
		b.node.Children = &Document{}
	}
	b.node.Children.Nodes = append(b.node.Children.Nodes, c.Build())
	return b
}

func (b *NodeBuilder) Block() *NodeBuilder {
	if b.node.Children == nil {
		b.node.Children = &Document{}
	}
	return b
}

func (b *NodeBuilder) Build() *Node {
	return b.node
}

func NewDocument(nodes ...*NodeBuilder) *Document {
	doc := &Document{Nodes: make([]*Node, 0, len(nodes))}
	for _, nb := range nodes {
		doc.Nodes = append(doc.Nodes, nb.Build())
	}
	return doc
}
