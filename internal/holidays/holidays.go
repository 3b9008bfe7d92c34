package holidays

import (
	"time"
)

// Calendar é a tabela de feriados nacionais, montada uma vez na subida do
// processo e somente lida depois disso — seguro para uso concorrente.
type Calendar struct {
	byDate map[string]string
}

const dateKey = "2006-01-02"

// NewBrazil monta o calendário de feriados nacionais brasileiros para o
// intervalo de anos informado (inclusive), com as datas fixas e as móveis
// derivadas da Páscoa.
func NewBrazil(fromYear, toYear int) *Calendar {
	c := &Calendar{byDate: make(map[string]string)}

	for year := fromYear; year <= toYear; year++ {
		c.add(year, time.January, 1, "Confraternização Universal")
		c.add(year, time.April, 21, "Tiradentes")
		c.add(year, time.May, 1, "Dia do Trabalho")
		c.add(year, time.September, 7, "Independência do Brasil")
		c.add(year, time.October, 12, "Nossa Senhora Aparecida")
		c.add(year, time.November, 2, "Finados")
		c.add(year, time.November, 15, "Proclamação da República")
		c.add(year, time.December, 25, "Natal")

		// feriado nacional a partir da Lei 14.759/2023
		if year >= 2024 {
			c.add(year, time.November, 20, "Dia Nacional de Zumbi e da Consciência Negra")
		}

		easterDay := easter(year)
		c.addDate(easterDay.AddDate(0, 0, -47), "Carnaval")
		c.addDate(easterDay.AddDate(0, 0, -2), "Sexta-feira Santa")
		c.addDate(easterDay.AddDate(0, 0, 60), "Corpus Christi")
	}

	return c
}

// IsHoliday considera apenas a data civil; a hora é ignorada
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.byDate[date.Format(dateKey)]
	return ok
}

// NameOf devolve o nome do feriado, se a data for um
func (c *Calendar) NameOf(date time.Time) (string, bool) {
	name, ok := c.byDate[date.Format(dateKey)]
	return name, ok
}

func (c *Calendar) add(year int, month time.Month, day int, name string) {
	c.addDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), name)
}

func (c *Calendar) addDate(date time.Time, name string) {
	c.byDate[date.Format(dateKey)] = name
}

// easter calcula o domingo de Páscoa pelo algoritmo de Meeus/Jones/Butcher
func easter(year int) time.Time {
	a := year % 19
	b := year / 100
	cc := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := cc / 4
	k := cc % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
