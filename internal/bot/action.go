package bot

// actionKind — закрытый набор действий, которые меню может породить.
// Всё остальное — чистая навигация без побочных эффектов.
type actionKind int

const (
	actTeleport actionKind = iota + 1
	actTeleportToPrimary
	actSetTime
	actSetWeather
	actSetDifficulty
	actSetMode
)

// action несёт только свои данные: токен базы либо значение настройки.
type action struct {
	kind  actionKind
	token string
}

func actForKind(k kind) actionKind {
	switch k {
	case kindTime:
		return actSetTime
	case kindWeather:
		return actSetWeather
	case kindDifficulty:
		return actSetDifficulty
	case kindMode:
		return actSetMode
	}
	return 0
}
