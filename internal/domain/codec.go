package domain

// JSON codecs. Each type keeps the key set it was decoded with in its state
// field, extras included; the local plain type drops the methods to avoid
// recursion.

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*d = Document(raw)
	d.state = st
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	return encodeObject(plain(d), d.state)
}

func (m *Meta) UnmarshalJSON(data []byte) error {
	type plain Meta
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*m = Meta(raw)
	m.state = st
	return nil
}

func (m Meta) MarshalJSON() ([]byte, error) {
	type plain Meta
	return encodeObject(plain(m), m.state)
}

func (t *Today) UnmarshalJSON(data []byte) error {
	type plain Today
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*t = Today(raw)
	t.state = st
	return nil
}

func (t Today) MarshalJSON() ([]byte, error) {
	type plain Today
	return encodeObject(plain(t), t.state)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*a = Account(raw)
	a.state = st
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return encodeObject(plain(a), a.state)
}

func (d *Debt) UnmarshalJSON(data []byte) error {
	type plain Debt
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*d = Debt(raw)
	d.state = st
	return nil
}

func (d Debt) MarshalJSON() ([]byte, error) {
	type plain Debt
	return encodeObject(plain(d), d.state)
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	type plain Asset
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*a = Asset(raw)
	a.state = st
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	type plain Asset
	return encodeObject(plain(a), a.state)
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	type plain Plan
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*p = Plan(raw)
	p.state = st
	return nil
}

func (p Plan) MarshalJSON() ([]byte, error) {
	type plain Plan
	return encodeObject(plain(p), p.state)
}

func (l *EventList) UnmarshalJSON(data []byte) error {
	type plain EventList
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*l = EventList(raw)
	l.state = st
	return nil
}

func (l EventList) MarshalJSON() ([]byte, error) {
	type plain EventList
	return encodeObject(plain(l), l.state)
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*e = Event(raw)
	e.state = st
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return encodeObject(plain(e), e.state)
}

func (m *Milestone) UnmarshalJSON(data []byte) error {
	type plain Milestone
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*m = Milestone(raw)
	m.state = st
	return nil
}

func (m Milestone) MarshalJSON() ([]byte, error) {
	type plain Milestone
	return encodeObject(plain(m), m.state)
}

func (r *DateReference) UnmarshalJSON(data []byte) error {
	type plain DateReference
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*r = DateReference(raw)
	r.state = st
	return nil
}

func (r DateReference) MarshalJSON() ([]byte, error) {
	type plain DateReference
	return encodeObject(plain(r), r.state)
}

func (c *Criterion) UnmarshalJSON(data []byte) error {
	type plain Criterion
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*c = Criterion(raw)
	c.state = st
	return nil
}

func (c Criterion) MarshalJSON() ([]byte, error) {
	type plain Criterion
	return encodeObject(plain(c), c.state)
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	type plain Progress
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*p = Progress(raw)
	p.state = st
	return nil
}

func (p Progress) MarshalJSON() ([]byte, error) {
	type plain Progress
	return encodeObject(plain(p), p.state)
}

func (p *ProgressPoint) UnmarshalJSON(data []byte) error {
	type plain ProgressPoint
	var raw plain
	st, err := decodeObject(data, &raw)
	if err != nil {
		return err
	}
	*p = ProgressPoint(raw)
	p.state = st
	return nil
}

func (p ProgressPoint) MarshalJSON() ([]byte, error) {
	type plain ProgressPoint
	return encodeObject(plain(p), p.state)
}
