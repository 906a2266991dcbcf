package entity

// Status etapa del ciclo de vida de un notebook en el rollout.
type Status string

const (
	StatusPendingHomologation Status = "PENDING_HOMOLOGATION"
	StatusHomologated         Status = "HOMOLOGATED"
	StatusInHomologation      Status = "IN_HOMOLOGATION"
	StatusInRollout           Status = "IN_ROLLOUT"
	StatusDelivered           Status = "DELIVERED"
	StatusReturned            Status = "RETURNED"
	StatusCompleted           Status = "COMPLETED"
)

// Statuses lista completa de estados válidos.
var Statuses = []Status{
	StatusPendingHomologation,
	StatusHomologated,
	StatusInHomologation,
	StatusInRollout,
	StatusDelivered,
	StatusReturned,
	StatusCompleted,
}

// IsValid indica si el valor pertenece a la enumeración.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Analyst analista responsable de ejecutar un movimiento.
type Analyst string

const (
	AnalystOsvaldo Analyst = "OSVALDO"
	AnalystDaniel  Analyst = "DANIEL"
	AnalystThiago  Analyst = "THIAGO"
	AnalystBruno   Analyst = "BRUNO"
)

// Analysts lista completa de analistas válidos.
var Analysts = []Analyst{AnalystOsvaldo, AnalystDaniel, AnalystThiago, AnalystBruno}

// IsValid indica si el valor pertenece a la enumeración.
func (a Analyst) IsValid() bool {
	for _, v := range Analysts {
		if a == v {
			return true
		}
	}
	return false
}

// NotebookType clasificación del equipo: nuevo o antiguo (a reemplazar).
type NotebookType string

const (
	NotebookTypeNew NotebookType = "NEW"
	NotebookTypeOld NotebookType = "OLD"
)

// IsValid indica si el valor pertenece a la enumeración.
func (t NotebookType) IsValid() bool {
	return t == NotebookTypeNew || t == NotebookTypeOld
}

// RamConfig configuración de memoria RAM del equipo.
type RamConfig string

const (
	RamConfigGB16  RamConfig = "GB16"
	RamConfigGB32  RamConfig = "GB32"
	RamConfigOther RamConfig = "OTHER"
)

// IsValid indica si el valor pertenece a la enumeración.
func (r RamConfig) IsValid() bool {
	return r == RamConfigGB16 || r == RamConfigGB32 || r == RamConfigOther
}
