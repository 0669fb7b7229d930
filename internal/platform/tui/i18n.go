package tui

import (
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Message identifies a translatable HUD string.
type Message string

const (
	MsgTitle      Message = "title"
	MsgScore      Message = "score"
	MsgLength     Message = "length"
	MsgBest       Message = "best"
	MsgSpeed      Message = "speed"
	MsgPaused     Message = "paused"
	MsgGameOver   Message = "game_over"
	MsgCauseWall  Message = "cause_wall"
	MsgCauseSelf  Message = "cause_self"
	MsgRestart    Message = "restart"
	MsgHighScores Message = "high_scores"
	MsgNoScores   Message = "no_scores"
	MsgSelectGame Message = "select_game"
)

// messages lists every Message, used to check catalogs for gaps.
var messages = []Message{
	MsgTitle, MsgScore, MsgLength, MsgBest, MsgSpeed, MsgPaused, MsgGameOver,
	MsgCauseWall, MsgCauseSelf, MsgRestart, MsgHighScores, MsgNoScores, MsgSelectGame,
}

var catalog = map[string]map[Message]string{
	"en": {
		MsgTitle:      "Snake Game",
		MsgScore:      "Score",
		MsgLength:     "Length",
		MsgBest:       "Best",
		MsgSpeed:      "Speed",
		MsgPaused:     "PAUSED",
		MsgGameOver:   "GAME OVER",
		MsgCauseWall:  "You hit the wall",
		MsgCauseSelf:  "You ran into yourself",
		MsgRestart:    "Press R to restart",
		MsgHighScores: "High Scores",
		MsgNoScores:   "No scores recorded yet",
		MsgSelectGame: "Select a game",
	},
	"uz": {
		MsgTitle:      "Ilon o'yini",
		MsgScore:      "Hisob",
		MsgLength:     "Uzunlik",
		MsgBest:       "Rekord",
		MsgSpeed:      "Tezlik",
		MsgPaused:     "PAUZA",
		MsgGameOver:   "O'YIN TUGADI",
		MsgCauseWall:  "Devorga urildingiz",
		MsgCauseSelf:  "O'zingizga urildingiz",
		MsgRestart:    "Qayta boshlash uchun R ni bosing",
		MsgHighScores: "Eng yaxshi natijalar",
		MsgNoScores:   "Hali natijalar yo'q",
		MsgSelectGame: "O'yinni tanlang",
	},
	"ru": {
		MsgTitle:      "Змейка",
		MsgScore:      "Счёт",
		MsgLength:     "Длина",
		MsgBest:       "Рекорд",
		MsgSpeed:      "Скорость",
		MsgPaused:     "ПАУЗА",
		MsgGameOver:   "ИГРА ОКОНЧЕНА",
		MsgCauseWall:  "Вы врезались в стену",
		MsgCauseSelf:  "Вы врезались в себя",
		MsgRestart:    "Нажмите R для перезапуска",
		MsgHighScores: "Рекорды",
		MsgNoScores:   "Рекордов пока нет",
		MsgSelectGame: "Выберите игру",
	},
	"it": {
		MsgTitle:      "Gioco del serpente",
		MsgScore:      "Punteggio",
		MsgLength:     "Lunghezza",
		MsgBest:       "Record",
		MsgSpeed:      "Velocità",
		MsgPaused:     "PAUSA",
		MsgGameOver:   "PARTITA FINITA",
		MsgCauseWall:  "Hai colpito il muro",
		MsgCauseSelf:  "Ti sei morso la coda",
		MsgRestart:    "Premi R per ricominciare",
		MsgHighScores: "Punteggi migliori",
		MsgNoScores:   "Nessun punteggio registrato",
		MsgSelectGame: "Scegli un gioco",
	},
	"es": {
		MsgTitle:      "Juego de la serpiente",
		MsgScore:      "Puntuación",
		MsgLength:     "Longitud",
		MsgBest:       "Récord",
		MsgSpeed:      "Velocidad",
		MsgPaused:     "PAUSA",
		MsgGameOver:   "FIN DEL JUEGO",
		MsgCauseWall:  "Chocaste contra la pared",
		MsgCauseSelf:  "Chocaste contigo mismo",
		MsgRestart:    "Pulsa R para reiniciar",
		MsgHighScores: "Mejores puntuaciones",
		MsgNoScores:   "Aún no hay puntuaciones",
		MsgSelectGame: "Elige un juego",
	},
	"ar": {
		MsgTitle:      "لعبة الثعبان",
		MsgScore:      "النتيجة",
		MsgLength:     "الطول",
		MsgBest:       "الأفضل",
		MsgSpeed:      "السرعة",
		MsgPaused:     "إيقاف مؤقت",
		MsgGameOver:   "انتهت اللعبة",
		MsgCauseWall:  "اصطدمت بالجدار",
		MsgCauseSelf:  "اصطدمت بنفسك",
		MsgRestart:    "اضغط R لإعادة البدء",
		MsgHighScores: "أعلى النتائج",
		MsgNoScores:   "لا توجد نتائج بعد",
		MsgSelectGame: "اختر لعبة",
	},
}

// T returns msg in locale, falling back to English.
func T(locale string, msg Message) string {
	if m, ok := catalog[locale]; ok {
		if s, ok := m[msg]; ok {
			return s
		}
	}
	if s, ok := catalog[config.DefaultLocale][msg]; ok {
		return s
	}
	return string(msg)
}

// CauseText describes why a game ended.
func CauseText(locale string, cause core.DeathCause) string {
	switch cause {
	case core.CauseWall:
		return T(locale, MsgCauseWall)
	case core.CauseSelf:
		return T(locale, MsgCauseSelf)
	}
	return ""
}
