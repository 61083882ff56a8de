// Package movies holds the fixed demo corpus: a small set of films indexed
// into the vector store and queried by the chat agent.
package movies

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/junaidbinfarooq/ai/schema"
)

// Movie is one entry of the demo corpus.
type Movie struct {
	Title       string
	Year        int
	Director    string
	Genre       string
	Description string
}

// All returns the demo corpus.
func All() []Movie {
	return []Movie{
		{
			Title:       "Heat",
			Year:        1995,
			Director:    "Michael Mann",
			Genre:       "crime",
			Description: "A meticulous career criminal plans one last heist in Los Angeles while an obsessive detective closes in, and the two men find they mirror each other.",
		},
		{
			Title:       "Alien",
			Year:        1979,
			Director:    "Ridley Scott",
			Genre:       "science fiction horror",
			Description: "The crew of the commercial towing vessel Nostromo answers a distress signal and brings aboard a lethal alien organism that hunts them one by one.",
		},
		{
			Title:       "Spirited Away",
			Year:        2001,
			Director:    "Hayao Miyazaki",
			Genre:       "animated fantasy",
			Description: "A ten-year-old girl wanders into a world of spirits and must work in a bathhouse for the gods to free her transformed parents.",
		},
		{
			Title:       "The Godfather",
			Year:        1972,
			Director:    "Francis Ford Coppola",
			Genre:       "crime drama",
			Description: "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant youngest son.",
		},
		{
			Title:       "Inception",
			Year:        2010,
			Director:    "Christopher Nolan",
			Genre:       "science fiction thriller",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea in a target's mind.",
		},
		{
			Title:       "Before Sunrise",
			Year:        1995,
			Director:    "Richard Linklater",
			Genre:       "romance",
			Description: "A young American man and a French woman meet on a train and spend one night walking and talking through Vienna before parting at dawn.",
		},
		{
			Title:       "Parasite",
			Year:        2019,
			Director:    "Bong Joon-ho",
			Genre:       "dark comedy thriller",
			Description: "A poor family schemes its way into the employment of a wealthy household, with escalating and violent consequences for both.",
		},
		{
			Title:       "Mad Max: Fury Road",
			Year:        2015,
			Director:    "George Miller",
			Genre:       "action",
			Description: "In a post-apocalyptic wasteland, a drifter and a rebellious war captain flee a tyrant across the desert in an armored war rig.",
		},
	}
}

// EmbeddingText renders the movie as the text that gets embedded.
func (m Movie) EmbeddingText() string {
	return fmt.Sprintf("%s (%d), directed by %s. Genre: %s. %s",
		m.Title, m.Year, m.Director, m.Genre, m.Description)
}

// Document builds the storable document for the movie with the given
// embedding. The identifier is a name-based UUID derived from the title, so
// re-indexing upserts the same rows instead of accumulating duplicates.
func (m Movie) Document(vector []float64) schema.Document {
	return schema.Document{
		ID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("movies/"+m.Title)).String(),
		Vector: vector,
		Metadata: map[string]any{
			"title":       m.Title,
			"year":        m.Year,
			"director":    m.Director,
			"genre":       m.Genre,
			"description": m.Description,
		},
	}
}
