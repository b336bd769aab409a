package services

import (
	"invoicedesk-backend/models"

	"github.com/google/uuid"
)

// Mode is the tagged operation state for one user's invoice panel. Exactly
// one create/edit/delete can be in flight; everything starts and ends at
// Idle.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeEditing
	ModeDeleting
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	case ModeDeleting:
		return "deleting"
	default:
		return "idle"
	}
}

// ModeController guards the transitions between panel states and owns the
// draft for the duration of one create/edit cycle. Leaving a state discards
// the draft unconditionally; there is no autosave.
type ModeController struct {
	mode   Mode
	target uuid.UUID
	draft  *Draft
}

func NewModeController() *ModeController {
	return &ModeController{mode: ModeIdle}
}

func (c *ModeController) Mode() Mode { return c.mode }

// Target is the invoice under edit or delete; zero otherwise.
func (c *ModeController) Target() uuid.UUID { return c.target }

// Draft is the open draft, or nil outside a create/edit cycle.
func (c *ModeController) Draft() *Draft { return c.draft }

// BeginCreate opens a create cycle with a fresh all-zero draft. Only legal
// from Idle.
func (c *ModeController) BeginCreate(catalog []models.Product) error {
	if c.mode != ModeIdle {
		return ErrModeBusy
	}
	c.mode = ModeCreating
	c.draft = NewDraft(catalog)
	return nil
}

// BeginEdit opens an edit cycle against a loaded invoice. Only legal from
// Idle.
func (c *ModeController) BeginEdit(inv models.Invoice, items []models.LineItem, catalog []models.Product) error {
	if c.mode != ModeIdle {
		return ErrModeBusy
	}
	c.mode = ModeEditing
	c.target = inv.ID
	c.draft = DraftFromInvoice(inv, items, catalog)
	return nil
}

// BeginDelete marks an invoice for deletion. Legal from Idle, and re-entrant
// for the same target so a failed store delete can be retried without a
// cancel in between.
func (c *ModeController) BeginDelete(ref uuid.UUID) error {
	if c.mode == ModeDeleting && c.target == ref {
		return nil
	}
	if c.mode != ModeIdle {
		return ErrModeBusy
	}
	c.mode = ModeDeleting
	c.target = ref
	return nil
}

// Reset returns to Idle from any state and drops the draft. Used for both
// cancel and successful completion.
func (c *ModeController) Reset() {
	c.mode = ModeIdle
	c.target = uuid.Nil
	c.draft = nil
}
