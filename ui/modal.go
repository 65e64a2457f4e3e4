package ui

// ModalMode tracks the record-dialog sub-state, independent from the list
// fetch state.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
	ModalView
)

type Modal struct {
	mode     ModalMode
	recordID int
}

func (m Modal) Open() bool      { return m.mode != ModalClosed }
func (m Modal) Mode() ModalMode { return m.mode }
func (m Modal) RecordID() int   { return m.recordID }
