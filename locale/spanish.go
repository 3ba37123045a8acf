package locale

import "golang.org/x/text/language"

var spanish = &table{
	tag:        language.Spanish,
	dateLayout: "02/01/2006",
	timeLayout: "15:04",
	fallback:   english,
	phrases: map[Key]string{
		OccursOnce:         "Ocurre una vez.",
		OccursEveryDay:     "Ocurre todos los días.",
		ScheduleUsedOn:     "La programación se usará el %s a las %s",
		StartingOn:         "empezando el %s",
		EndingOn:           "terminando el %s",
		OccursSomeDay:      "Ocurre el %s %s de cada %d meses",
		OccursConcreteDay:  "Ocurre el día %d de cada %d meses",
		EveryWeeksOn:       "cada %d semanas el %s",
		EveryAmount:        "cada %d %s",
		OnTime:             "a las %s",
		BetweenTimes:       "entre las %s y las %s",
		ListSeparator:      ", ",
		ListFinalSeparator: " y ",

		First:  "primer",
		Second: "segundo",
		Third:  "tercer",
		Fourth: "cuarto",
		Last:   "último",

		Monday:     "lunes",
		Tuesday:    "martes",
		Wednesday:  "miércoles",
		Thursday:   "jueves",
		Friday:     "viernes",
		Saturday:   "sábado",
		Sunday:     "domingo",
		Weekday:    "día laborable",
		WeekendDay: "día de fin de semana",

		Hours:   "horas",
		Minutes: "minutos",
		Seconds: "segundos",

		ErrConfigMissing:               "la configuración es obligatoria",
		ErrMissingLimitEndDate:         "una programación periódica requiere una fecha de fin",
		ErrDailyFrequencyMissingWindow: "una frecuencia diaria con intervalo requiere hora de inicio y de fin",
		ErrMonthlyConfigMissing:        "la configuración mensual no tiene regla",
		ErrMonthlyModeConflict:         "la regla mensual debe ser un día concreto o un día de la semana",
		ErrMonthlyDayNotPositive:       "el día del mes debe ser mayor que cero",
		ErrMonthlyDayOutOfRange:        "el día del mes no puede ser mayor que 31",
		ErrMonthlyStepMissing:          "la regla de día concreto requiere un intervalo de meses",
		ErrMonthlyOrdinalMissing:       "la regla de día de la semana requiere un ordinal",
		ErrMonthlyWeekdayMissing:       "la regla de día de la semana requiere un día",
		ErrMonthlyStepMissingSomeDay:   "la regla de día de la semana requiere un intervalo de meses",
		ErrMonthlyStepNotPositive:      "el intervalo de meses debe ser mayor que cero",
	},
}
