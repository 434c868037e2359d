// Package catalog holds the static, read-only data shipped with the binary:
// the movie catalog, the category taxonomy, the store catalog and the
// mini-game list. Nothing here is mutated at runtime; community additions
// live in the database and are merged at read time.
package catalog

import "cinehub-rest-api/internal/model"

var movies = []model.Movie{
	{
		ID:          1,
		Title:       "El Último Horizonte",
		Description: "Una expedición a los confines del sistema solar descubre que no está sola.",
		Image:       "/images/movies/el-ultimo-horizonte.jpg",
		Year:        2021,
		Duration:    "2h 14min",
		Rating:      4.5,
		Genres:      []string{"ciencia-ficcion", "drama"},
		Cast:        []string{"Ana Torres", "Miguel Ríos", "Carla Vega"},
		Director:    "Lucía Fernández",
		Trailer:     "https://video.example.com/trailers/1",
	},
	{
		ID:          2,
		Title:       "Medianoche en Sevilla",
		Description: "Un detective retirado vuelve al caso que nunca pudo cerrar.",
		Image:       "/images/movies/medianoche-en-sevilla.jpg",
		Year:        2019,
		Duration:    "1h 58min",
		Rating:      4.2,
		Genres:      []string{"thriller", "drama"},
		Cast:        []string{"Javier Soto", "Elena Marín"},
		Director:    "Pablo Iglesias",
		Trailer:     "https://video.example.com/trailers/2",
	},
	{
		ID:          3,
		Title:       "Risas de Verano",
		Description: "Tres amigos, un plan absurdo y el mejor verano de sus vidas.",
		Image:       "/images/movies/risas-de-verano.jpg",
		Year:        2022,
		Duration:    "1h 42min",
		Rating:      3.8,
		Genres:      []string{"comedia"},
		Cast:        []string{"Diego Lara", "Sofía Prieto", "Raúl Campos"},
		Director:    "Marta Delgado",
	},
	{
		ID:          4,
		Title:       "La Casa del Acantilado",
		Description: "Una familia hereda una casa en la costa con un pasado que se niega a quedarse enterrado.",
		Image:       "/images/movies/la-casa-del-acantilado.jpg",
		Year:        2020,
		Duration:    "1h 49min",
		Rating:      4.0,
		Genres:      []string{"terror", "misterio"},
		Cast:        []string{"Irene Castro", "Tomás Aguilar"},
		Director:    "Sergio Navarro",
		Trailer:     "https://video.example.com/trailers/4",
	},
	{
		ID:          5,
		Title:       "Código Fantasma",
		Description: "Una programadora encuentra un mensaje oculto en un sistema que lleva décadas apagado.",
		Image:       "/images/movies/codigo-fantasma.jpg",
		Year:        2023,
		Duration:    "2h 05min",
		Rating:      4.4,
		Genres:      []string{"thriller", "ciencia-ficcion"},
		Cast:        []string{"Laura Méndez", "Óscar Pinto", "Nuria Salas"},
		Director:    "Andrés Bello",
		Trailer:     "https://video.example.com/trailers/5",
	},
	{
		ID:          6,
		Title:       "Cartas a Nadie",
		Description: "Una historia de amor contada a través de cartas que nunca se enviaron.",
		Image:       "/images/movies/cartas-a-nadie.jpg",
		Year:        2018,
		Duration:    "1h 51min",
		Rating:      4.1,
		Genres:      []string{"romance", "drama"},
		Cast:        []string{"Clara Ibáñez", "Martín Vidal"},
		Director:    "Rosa Giménez",
	},
	{
		ID:          7,
		Title:       "Operación Cóndor",
		Description: "Un equipo de rescate tiene 48 horas para cruzar territorio hostil.",
		Image:       "/images/movies/operacion-condor.jpg",
		Year:        2022,
		Duration:    "2h 10min",
		Rating:      3.9,
		Genres:      []string{"accion", "aventura"},
		Cast:        []string{"Héctor Bravo", "Paula Serrano", "Iván Duarte"},
		Director:    "Gonzalo Peña",
		Trailer:     "https://video.example.com/trailers/7",
	},
	{
		ID:          8,
		Title:       "El Jardín de las Horas",
		Description: "Animación sobre una niña que puede detener el tiempo, pero solo en su jardín.",
		Image:       "/images/movies/el-jardin-de-las-horas.jpg",
		Year:        2021,
		Duration:    "1h 36min",
		Rating:      4.7,
		Genres:      []string{"animacion", "aventura"},
		Cast:        []string{"Voces: Alba Cano", "Bruno Ortiz"},
		Director:    "Teresa Lozano",
		Trailer:     "https://video.example.com/trailers/8",
	},
}

var categories = []model.Category{
	{ID: "accion", Name: "Acción", Icon: "zap", Color: "bg-red-600"},
	{ID: "aventura", Name: "Aventura", Icon: "compass", Color: "bg-orange-600"},
	{ID: "animacion", Name: "Animación", Icon: "sparkles", Color: "bg-pink-600"},
	{ID: "ciencia-ficcion", Name: "Ciencia Ficción", Icon: "rocket", Color: "bg-blue-600"},
	{ID: "comedia", Name: "Comedia", Icon: "smile", Color: "bg-yellow-600"},
	{ID: "drama", Name: "Drama", Icon: "theater", Color: "bg-purple-600"},
	{ID: "misterio", Name: "Misterio", Icon: "search", Color: "bg-indigo-600"},
	{ID: "romance", Name: "Romance", Icon: "heart", Color: "bg-rose-600"},
	{ID: "terror", Name: "Terror", Icon: "ghost", Color: "bg-gray-600"},
	{ID: "thriller", Name: "Thriller", Icon: "eye", Color: "bg-green-600"},
}

// Movies returns the static movie catalog.
func Movies() []model.Movie {
	return movies
}

// MovieByID looks up a static movie by id.
func MovieByID(id int64) (model.Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return model.Movie{}, false
}

// Categories returns the category taxonomy.
func Categories() []model.Category {
	return categories
}
