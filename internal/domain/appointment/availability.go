package appointment

import "time"

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

// DayWindow é a grade de atendimento de um dia: janela de trabalho
// e pausa de almoço opcional, em "HH:MM" no fuso do profissional.
type DayWindow struct {
	Start      string
	End        string
	LunchStart string
	LunchEnd   string
}

type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// FreeSlots enumera todos os inícios de slot da grade do dia e devolve,
// em ordem cronológica, os que comportam o atendimento inteiro sem
// encostar em nenhum intervalo ocupado. Somente agendamentos confirmados
// entram em busy: pendentes não reservam horário.
//
// Slots que começam antes de now nunca são oferecidos, então uma data
// passada produz lista vazia.
func FreeSlots(
	date time.Time,
	win DayWindow,
	step time.Duration,
	duration time.Duration,
	busy []Interval,
	now time.Time,
) []string {

	if duration <= 0 || step <= 0 {
		return nil
	}

	loc := date.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	dayStart, ok := parseHM(win.Start)
	if !ok {
		return nil
	}
	dayEnd, ok := parseHM(win.End)
	if !ok {
		return nil
	}

	hasLunch := win.LunchStart != "" && win.LunchEnd != ""
	var lunch Interval
	if hasLunch {
		ls, ok1 := parseHM(win.LunchStart)
		le, ok2 := parseHM(win.LunchEnd)
		if ok1 && ok2 {
			lunch = Interval{Start: ls, End: le}
		} else {
			hasLunch = false
		}
	}

	var slots []string

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {

		slot := Interval{Start: cur, End: cur.Add(duration)}

		if !cur.After(now) {
			continue
		}

		if hasLunch && slot.Overlaps(lunch) {
			continue
		}

		conflict := false
		for _, b := range busy {
			if slot.Overlaps(b) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, cur.Format("15:04"))
		}
	}

	return slots
}
