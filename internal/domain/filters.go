package domain

import "time"

// RangeFilter delimita uma janela inclusiva de datas do calendário para as
// agregações. Os dois limites são opcionais.
type RangeFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
