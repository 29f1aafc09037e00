package workflow

import "catering_portal/internal/domain/entities"

// Validator answers transition legality questions against an injected rule
// table. It has no side effects and holds no mutable state, so a single
// instance is safe for concurrent use.
type Validator struct {
	table *Table
}

func NewValidator(table *Table) *Validator {
	return &Validator{table: table}
}

// Match scans the table for a rule allowing current→desired by the given
// role. A wildcard-from rule matches any current status. Unknown statuses
// never match: same→same is invalid unless explicitly tabled.
func (v *Validator) Match(kind entities.EntityKind, current, desired string, role entities.ActorRole) (Rule, bool) {
	if !knownStatus(kind, current) || !knownStatus(kind, desired) {
		return Rule{}, false
	}
	for _, r := range v.table.Rules(kind) {
		if r.To != desired {
			continue
		}
		if r.From != current && r.From != FromAny {
			continue
		}
		// The wildcard never permits re-entering the current status;
		// same→same must be an explicit rule to be legal.
		if r.From == FromAny && current == desired {
			continue
		}
		if !r.AllowsRole(role) {
			continue
		}
		return r, true
	}
	return Rule{}, false
}

// IsValidTransition reports whether the transition is legal for the role.
func (v *Validator) IsValidTransition(kind entities.EntityKind, current, desired string, role entities.ActorRole) bool {
	_, ok := v.Match(kind, current, desired, role)
	return ok
}

func knownStatus(kind entities.EntityKind, s string) bool {
	switch kind {
	case entities.EntityKindQuote:
		return entities.KnownQuoteStatus(entities.QuoteStatus(s))
	case entities.EntityKindInvoice:
		return entities.KnownInvoiceStatus(entities.InvoiceStatus(s))
	}
	return false
}
