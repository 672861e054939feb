package disputeconsolesdk

// SearchCriteria 把字段名映射到比较条件，由调用方链式构造，最终序列化成
// advanced_search 请求体里的 search 对象，例如：
//
//	c := NewSearchCriteria()
//	c.Text("id").Is("dsp_123")
//	c.Text("caseNumber").Contains("CB")
//	c.Range("amount").Between("10.00", "99.99")
//	c.Multiple("status").In("open", "disputed")
//
// => {"id": {"is": "dsp_123"}, "caseNumber": {"contains": "CB"},
//     "amount": {"min": "10.00", "max": "99.99"}, "status": ["open", "disputed"]}
type SearchCriteria struct {
	fields map[string]any
}

func NewSearchCriteria() *SearchCriteria {
	return &SearchCriteria{fields: make(map[string]any)}
}

func (c *SearchCriteria) payload() map[string]any {
	if c == nil || len(c.fields) == 0 {
		return map[string]any{}
	}
	return c.fields
}

// Text 返回文本字段的条件节点。对同一字段重复调用会覆盖旧条件。
func (c *SearchCriteria) Text(field string) *TextNode {
	node := &TextNode{terms: make(map[string]string)}
	c.fields[field] = node.terms
	return node
}

// Range 返回可比较字段（金额、日期）的区间条件节点。
func (c *SearchCriteria) Range(field string) *RangeNode {
	node := &RangeNode{terms: make(map[string]string)}
	c.fields[field] = node.terms
	return node
}

// Multiple 返回多值字段的条件节点（命中任一值即匹配）。
func (c *SearchCriteria) Multiple(field string) *MultiNode {
	return &MultiNode{criteria: c, field: field}
}

type TextNode struct {
	terms map[string]string
}

func (n *TextNode) Is(v string) *TextNode         { n.terms["is"] = v; return n }
func (n *TextNode) IsNot(v string) *TextNode      { n.terms["isNot"] = v; return n }
func (n *TextNode) Contains(v string) *TextNode   { n.terms["contains"] = v; return n }
func (n *TextNode) StartsWith(v string) *TextNode { n.terms["startsWith"] = v; return n }
func (n *TextNode) EndsWith(v string) *TextNode   { n.terms["endsWith"] = v; return n }

type RangeNode struct {
	terms map[string]string
}

func (n *RangeNode) Is(v string) *RangeNode  { n.terms["is"] = v; return n }
func (n *RangeNode) Min(v string) *RangeNode { n.terms["min"] = v; return n }
func (n *RangeNode) Max(v string) *RangeNode { n.terms["max"] = v; return n }

func (n *RangeNode) Between(min, max string) *RangeNode {
	return n.Min(min).Max(max)
}

type MultiNode struct {
	criteria *SearchCriteria
	field    string
}

func (n *MultiNode) In(values ...string) *MultiNode {
	n.criteria.fields[n.field] = values
	return n
}
