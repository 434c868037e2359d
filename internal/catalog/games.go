package catalog

import "cinehub-rest-api/internal/model"

var miniGames = []model.MiniGame{
	{
		ID: 1, Name: "Trivia de Películas",
		Description:  "Demuestra tus conocimientos sobre cine respondiendo preguntas",
		Category:     "trivia", Difficulty: "medium", PointsReward: 10, Icon: "🎬",
	},
	{
		ID: 2, Name: "Memoria de Actores",
		Description:  "Encuentra las parejas de actores famosos",
		Category:     "memory", Difficulty: "easy", PointsReward: 5, Icon: "🧠",
	},
	{
		ID: 3, Name: "Adivina la Película",
		Description:  "Identifica la película por una imagen o descripción",
		Category:     "puzzle", Difficulty: "hard", PointsReward: 15, Icon: "🔍",
	},
	{
		ID: 4, Name: "Reacción Rápida",
		Description:  "Haz clic en los elementos que aparecen lo más rápido posible",
		Category:     "action", Difficulty: "medium", PointsReward: 8, Icon: "⚡",
	},
	{
		ID: 5, Name: "Estrategia de Géneros",
		Description:  "Organiza las películas por géneros de manera estratégica",
		Category:     "strategy", Difficulty: "hard", PointsReward: 20, Icon: "🎯",
	},
	{
		ID: 6, Name: "Dados de la Suerte",
		Description:  "Juego de dados con premios aleatorios",
		Category:     "action", Difficulty: "easy", PointsReward: 3, Icon: "🎲",
	},
}

// MiniGames returns the static mini-game list.
func MiniGames() []model.MiniGame {
	return miniGames
}

// MiniGameByID looks up a mini-game by id.
func MiniGameByID(id int64) (model.MiniGame, bool) {
	for _, g := range miniGames {
		if g.ID == id {
			return g, true
		}
	}
	return model.MiniGame{}, false
}
