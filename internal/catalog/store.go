package catalog

import (
	"encoding/json"

	"cinehub-rest-api/internal/model"
)

// Static store catalog. Ids stay below model.CustomItemIDStart; everything
// above it belongs to admin-created custom items in the database.
var storeItems = []model.StoreItem{
	// Themes
	{
		ID: 1, Type: model.ItemTypeTheme, Name: "Tema Océano",
		Description: "Colores fríos inspirados en el mar profundo.",
		Image:       "/images/store/tema-oceano.jpg", Cost: 50,
		Data: json.RawMessage(`{"name":"oceano","primaryColor":"#0ea5e9","secondaryColor":"#0c4a6e","accentColor":"#38bdf8","backgroundColor":"#020617"}`),
	},
	{
		ID: 2, Type: model.ItemTypeTheme, Name: "Tema Atardecer",
		Description: "Tonos cálidos de un atardecer de verano.",
		Image:       "/images/store/tema-atardecer.jpg", Cost: 50,
		Data: json.RawMessage(`{"name":"atardecer","primaryColor":"#f97316","secondaryColor":"#7c2d12","accentColor":"#fbbf24","backgroundColor":"#1c1917"}`),
	},
	{
		ID: 3, Type: model.ItemTypeTheme, Name: "Tema Bosque",
		Description: "Verdes profundos para sesiones nocturnas.",
		Image:       "/images/store/tema-bosque.jpg", Cost: 75,
		Data: json.RawMessage(`{"name":"bosque","primaryColor":"#22c55e","secondaryColor":"#14532d","accentColor":"#86efac","backgroundColor":"#052e16"}`),
	},
	// Emotes
	{
		ID: 10, Type: model.ItemTypeEmote, Name: "Palomitas",
		Description: "Para los momentos de máxima tensión.",
		Image:       "/images/store/emote-palomitas.jpg", Cost: 15,
		Data: json.RawMessage(`{"emoji":"🍿","code":":palomitas:"}`),
	},
	{
		ID: 11, Type: model.ItemTypeEmote, Name: "Claqueta",
		Description: "¡Acción!",
		Image:       "/images/store/emote-claqueta.jpg", Cost: 15,
		Data: json.RawMessage(`{"emoji":"🎬","code":":claqueta:"}`),
	},
	{
		ID: 12, Type: model.ItemTypeEmote, Name: "Mente Volada",
		Description: "Cuando el giro final no te lo esperabas.",
		Image:       "/images/store/emote-mente-volada.jpg", Cost: 20,
		Data: json.RawMessage(`{"emoji":"🤯","code":":mente-volada:"}`),
	},
	{
		ID: 13, Type: model.ItemTypeEmote, Name: "Ovación",
		Description: "Aplausos de pie para las obras maestras.",
		Image:       "/images/store/emote-ovacion.jpg", Cost: 25,
		Data: json.RawMessage(`{"emoji":"👏","code":":ovacion:"}`),
	},
	// Avatars
	{
		ID: 20, Type: model.ItemTypeAvatar, Name: "Avatar Director",
		Description: "Silla de director y megáfono incluidos.",
		Image:       "/images/store/avatar-director.jpg", Cost: 40,
		Data: json.RawMessage(`{"url":"/images/avatars/director.png"}`),
	},
	{
		ID: 21, Type: model.ItemTypeAvatar, Name: "Avatar Alienígena",
		Description: "Llegado directamente del estreno galáctico.",
		Image:       "/images/store/avatar-alienigena.jpg", Cost: 40,
		Data: json.RawMessage(`{"url":"/images/avatars/alienigena.png"}`),
	},
	{
		ID: 22, Type: model.ItemTypeAvatar, Name: "Avatar Vampiro",
		Description: "Solo aparece en las funciones de medianoche.",
		Image:       "/images/store/avatar-vampiro.jpg", Cost: 60,
		Data: json.RawMessage(`{"url":"/images/avatars/vampiro.png"}`),
	},
	// Others: badges and frames
	{
		ID: 30, Type: model.ItemTypeOther, Name: "Insignia Estrella de Oro",
		Description: "Para perfiles con brillo propio.",
		Image:       "/images/store/insignia-estrella.jpg", Cost: 100,
		Data: json.RawMessage(`{"kind":"badge","icon":"⭐"}`),
	},
	{
		ID: 31, Type: model.ItemTypeOther, Name: "Insignia Crítico",
		Description: "Tu opinión pesa.",
		Image:       "/images/store/insignia-critico.jpg", Cost: 120,
		Data: json.RawMessage(`{"kind":"badge","icon":"✒️"}`),
	},
	{
		ID: 32, Type: model.ItemTypeOther, Name: "Marco Neón",
		Description: "Un marco de neón para tu avatar.",
		Image:       "/images/store/marco-neon.jpg", Cost: 80,
		Data: json.RawMessage(`{"kind":"frame","style":"neon"}`),
	},
	{
		ID: 33, Type: model.ItemTypeOther, Name: "Marco Dorado",
		Description: "Clásico y elegante.",
		Image:       "/images/store/marco-dorado.jpg", Cost: 90,
		Data: json.RawMessage(`{"kind":"frame","style":"dorado"}`),
	},
}

// StoreItems returns the static store catalog.
func StoreItems() []model.StoreItem {
	return storeItems
}

// StoreItemByID looks up a static store item by id.
func StoreItemByID(id int64) (model.StoreItem, bool) {
	for _, it := range storeItems {
		if it.ID == id {
			return it, true
		}
	}
	return model.StoreItem{}, false
}
