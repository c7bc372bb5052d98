package tree

// Object is an ordered mapping from keys to either a Value or a nested
// Object.
//
// Fields[i] is the key for Values[i]. Keys keep the position of their first
// insertion; setting an existing key replaces its member in place.
type Object struct {
	Fields []string
	Values []Member

	index map[string]int
}

// Member is an Object entry: Object is non-nil for nested objects,
// otherwise Value holds the primitive.
type Member struct {
	Value  Value
	Object *Object
}

func (m Member) Type() Type {
	if m.Object != nil {
		return ObjectType
	}
	return m.Value.Type
}

func (m Member) Equal(o Member) bool {
	if m.Object != nil || o.Object != nil {
		return m.Object.Equal(o.Object)
	}
	return m.Value.Equal(o.Value)
}

func NewObject() *Object {
	return &Object{
		Fields: []string{},
		Values: []Member{},
		index:  map[string]int{},
	}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Fields)
}

func (o *Object) Set(key string, m Member) {
	if o.index == nil {
		o.reindex()
	}
	if i, ok := o.index[key]; ok {
		o.Values[i] = m
		return
	}
	o.index[key] = len(o.Fields)
	o.Fields = append(o.Fields, key)
	o.Values = append(o.Values, m)
}

func (o *Object) SetValue(key string, v Value) {
	o.Set(key, Member{Value: v})
}

func (o *Object) SetObject(key string, sub *Object) {
	o.Set(key, Member{Object: sub})
}

func (o *Object) Get(key string) (Member, bool) {
	if o == nil {
		return Member{}, false
	}
	if o.index == nil {
		o.reindex()
	}
	i, ok := o.index[key]
	if !ok {
		return Member{}, false
	}
	return o.Values[i], true
}

// Equal reports whether o and p hold the same keys in the same order with
// equal members.
func (o *Object) Equal(p *Object) bool {
	if o == p {
		return true
	}
	if o == nil || p == nil {
		return false
	}
	if len(o.Fields) != len(p.Fields) {
		return false
	}
	for i := range o.Fields {
		if o.Fields[i] != p.Fields[i] {
			return false
		}
		if !o.Values[i].Equal(p.Values[i]) {
			return false
		}
	}
	return true
}

func (o *Object) reindex() {
	o.index = make(map[string]int, len(o.Fields))
	for i, f := range o.Fields {
		o.index[f] = i
	}
}
