package prtitle

// match holds the groups of a title that fits the conventional schema.
type match struct {
	typ     string
	scope   string
	subject string
}

func (v *Validator) matchSchema(title string) (match, bool) {
	groups := v.compiled.schema.FindStringSubmatch(title)
	if groups == nil {
		validatorLog.Print("Title does not match conventional schema")
		return match{}, false
	}
	return match{
		typ:     groups[v.compiled.typeIdx],
		scope:   groups[v.compiled.scopeIdx],
		subject: groups[v.compiled.subjectIdx],
	}, true
}

func (v *Validator) containsTicketNumber(title string) bool {
	return v.compiled.ticket.MatchString(title)
}
