package entities

import (
	"errors"
	"time"
)

// Decision is the outcome of one role's approval step.
//
// Persisted values follow the labels used across the contract workflow
// ("pendente" / "aprovado" / "reprovado").

type Decision string

const (
	DecisionPending  Decision = "pendente"
	DecisionApproved Decision = "aprovado"
	DecisionRejected Decision = "reprovado"
)

var (
	ErrInvalidRole      = errors.New("role is not a member of this gate")
	ErrInvalidDecision  = errors.New("decision must be aprovado or reprovado")
	ErrAlreadyFinalized = errors.New("gate already rejected; reset required before deciding again")
)

// ApprovalRecord is one role's decision with timestamp and optional
// justification.

type ApprovalRecord struct {
	Role          Role      `json:"role"`
	Decision      Decision  `json:"decision"`
	DecidedAt     time.Time `json:"decided_at,omitempty"`
	Justification string    `json:"justification,omitempty"`
}

func (r ApprovalRecord) Decided() bool {
	return r.Decision == DecisionApproved || r.Decision == DecisionRejected
}

// Gate is a named set of role-scoped approval records. Its aggregate
// state is derived from the members and never stored independently:
// all members approved => approved, any member rejected => rejected,
// otherwise pending. Member decisions commute.

type Gate struct {
	Members []ApprovalRecord `json:"members"`
}

func NewGate(roles ...Role) Gate {
	members := make([]ApprovalRecord, 0, len(roles))
	for _, role := range roles {
		members = append(members, ApprovalRecord{Role: role, Decision: DecisionPending})
	}
	return Gate{Members: members}
}

func (g Gate) State() Decision {
	if len(g.Members) == 0 {
		return DecisionPending
	}
	approved := 0
	for _, m := range g.Members {
		switch m.Decision {
		case DecisionRejected:
			return DecisionRejected
		case DecisionApproved:
			approved++
		}
	}
	if approved == len(g.Members) {
		return DecisionApproved
	}
	return DecisionPending
}

func (g Gate) Member(role Role) (ApprovalRecord, bool) {
	for _, m := range g.Members {
		if m.Role == role {
			return m, true
		}
	}
	return ApprovalRecord{}, false
}

// Record applies one member's decision. An already rejected aggregate
// must be reset before it accepts new decisions.
func (g *Gate) Record(role Role, decision Decision, justification string, at time.Time) error {
	if decision != DecisionApproved && decision != DecisionRejected {
		return ErrInvalidDecision
	}
	idx := -1
	for i, m := range g.Members {
		if m.Role == role {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrInvalidRole
	}
	if g.State() == DecisionRejected {
		return ErrAlreadyFinalized
	}
	g.Members[idx].Decision = decision
	g.Members[idx].DecidedAt = at
	g.Members[idx].Justification = justification
	return nil
}

// Reset returns every member to pending and clears timestamps and
// justifications.
func (g *Gate) Reset() {
	for i := range g.Members {
		g.Members[i].Decision = DecisionPending
		g.Members[i].DecidedAt = time.Time{}
		g.Members[i].Justification = ""
	}
}

// RejectionJustification returns the justification of the first
// rejecting member, if any.
func (g Gate) RejectionJustification() string {
	for _, m := range g.Members {
		if m.Decision == DecisionRejected {
			return m.Justification
		}
	}
	return ""
}
