package jsoncontract

// Compile compiles given schema document.
//
// Compilation never fails: keywords with unexpected payload shape are ignored,
// like unknown keywords are. Sub-schemas which are neither boolean nor object
// are reported only by validation, when they are applied to instance.
func Compile(doc Value) *Schema {
	switch doc.Kind() {
	case Bool:
		if doc.Bool() {
			return &Schema{kind: trueSchema}
		}
		return &Schema{kind: falseSchema}
	case Object:
	default:
		return &Schema{kind: invalidSchema, nodeKind: doc.Kind()}
	}

	s := &Schema{
		kind:      objectSchema,
		minLength: parseLimit(doc.Get("minLength")),
		minItems:  parseLimit(doc.Get("minItems")),
		maxItems:  parseLimit(doc.Get("maxItems")),
		minimum:   numberLimit(doc.Get("minimum")),
		maximum:   numberLimit(doc.Get("maximum")),
	}
	compileType(s, doc)

	if c, ok := doc.Get("const"); ok {
		s.hasConst = true
		s.constant = c
	}
	if e, ok := doc.Get("enum"); ok && e.Kind() == Array {
		s.hasEnum = true
		s.enum = e.Elems()
		s.enumDesc = e.String()
	}

	if it, ok := doc.Get("items"); ok {
		s.items = Compile(it)
	}

	if req, ok := doc.Get("required"); ok && req.Kind() == Array {
		for _, key := range req.Elems() {
			if key.Kind() != String {
				continue
			}
			s.required = append(s.required, key.Str())
		}
	}

	props, ok := doc.Get("properties")
	switch {
	case !ok:
		s.checkProperties = true
	case props.Kind() == Object:
		s.checkProperties = true
		s.properties = make([]property, 0, props.Len())
		s.propertyIndex = make(map[string]*Schema, props.Len())
		for _, m := range props.Members() {
			sch := Compile(m.Value)
			s.properties = append(s.properties, property{Name: m.Key, Schema: sch})
			s.propertyIndex[m.Key] = sch
		}
	}
	if ap, ok := doc.Get("additionalProperties"); ok && ap.Kind() == Bool && !ap.Bool() {
		s.noAdditional = true
	}

	if all, ok := doc.Get("allOf"); ok && all.Kind() == Array {
		s.allOf = compileMany(all.Elems())
	}

	for _, single := range []struct {
		name string
		to   **Schema
	}{
		{"if", &s.ifSchema},
		{"then", &s.thenSchema},
	} {
		// Null is the same as absent keyword.
		if v, ok := doc.Get(single.name); ok && v.Kind() != Null {
			*single.to = Compile(v)
		}
	}

	return s
}

func compileType(s *Schema, doc Value) {
	typ, ok := doc.Get("type")
	if !ok || typ.Kind() == Null {
		return
	}
	s.hasType = true

	switch typ.Kind() {
	case String:
		s.typeDesc = typ.Str()
		s.types, _ = parseTypeName(typ.Str())
	case Array:
		s.typeDesc = "one of " + typ.String()
		for _, elem := range typ.Elems() {
			if elem.Kind() != String {
				continue
			}
			t, _ := parseTypeName(elem.Str())
			s.types |= t
		}
	default:
		// Matches nothing.
		s.typeDesc = typ.String()
	}
}

func compileMany(schemas []Value) []*Schema {
	result := make([]*Schema, 0, len(schemas))
	for _, schema := range schemas {
		result = append(result, Compile(schema))
	}
	return result
}
