// Command moviesrag indexes a small movie corpus into a vector store and
// answers a question with a chat agent backed by a similarity-search tool.
//
// With --store=supabase (the default) it talks to a hosted Supabase project;
// SUPABASE_URL and SUPABASE_API_KEY must be set, and the documents table and
// match_documents function must exist already. With --store=memory it uses an
// in-process store, which only needs OPENAI_API_KEY.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/junaidbinfarooq/ai/agent"
	"github.com/junaidbinfarooq/ai/embedding"
	"github.com/junaidbinfarooq/ai/llm"
	"github.com/junaidbinfarooq/ai/movies"
	"github.com/junaidbinfarooq/ai/prompts"
	"github.com/junaidbinfarooq/ai/schema"
	"github.com/junaidbinfarooq/ai/tools"
	"github.com/junaidbinfarooq/ai/vectorstore"
	"github.com/junaidbinfarooq/ai/vectorstore/chromem"
	"github.com/junaidbinfarooq/ai/vectorstore/supabase"
)

func main() {
	// load the environment variables
	_ = godotenv.Load()

	question := flag.String("question", "Recommend a movie about a heist.", "Question to ask the agent")
	storeKind := flag.String("store", "supabase", "Vector store backend: supabase or memory")
	topK := flag.Int("top-k", tools.DefaultSearchTopK, "Number of documents the search tool retrieves")
	skipIndex := flag.Bool("skip-index", false, "Skip indexing the fixture corpus")
	flag.Parse()

	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	ctx := context.Background()

	store, err := buildStore(*storeKind)
	if err != nil {
		log.Fatal("Failed to create vector store: ", err)
	}

	embedder := embedding.NewOpenAIEmbedding("", "")

	if !*skipIndex {
		if err := indexMovies(ctx, store, embedder); err != nil {
			log.Fatal("Failed to index movies: ", err)
		}
	}

	searchTool := tools.NewSearchTool(store, embedder,
		tools.WithSearchToolDescription("Search the movie knowledge base for films matching a natural language description."),
		tools.WithSearchTopK(*topK),
	)

	systemPrompt := prompts.NewPromptTemplate(prompts.DefaultAgentPromptTmpl).Format(map[string]string{
		"tool_name": searchTool.Metadata().Name,
	})

	movieAgent := agent.New(
		llm.NewOpenAILLM("", ""),
		[]tools.Tool{searchTool},
		agent.WithSystemPrompt(systemPrompt),
	)

	log.Info("Asking: ", *question)

	resp, err := movieAgent.Chat(ctx, *question)
	if err != nil {
		log.Fatal("Agent chat failed: ", err)
	}

	fmt.Println(resp.Response)

	for _, source := range resp.Sources {
		log.Debug("Source from ", source.ToolName, ":\n", source.Content)
	}
}

// buildStore creates the requested vector store backend.
func buildStore(kind string) (vectorstore.VectorStore, error) {
	switch kind {
	case "supabase":
		baseURL := os.Getenv("SUPABASE_URL")
		apiKey := os.Getenv("SUPABASE_API_KEY")
		if baseURL == "" || apiKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_API_KEY must be set for the supabase store")
		}
		return supabase.NewStore(baseURL, apiKey), nil
	case "memory":
		return chromem.NewChromemStore("", "movies", supabase.DefaultDimension)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", kind)
	}
}

// indexMovies embeds the fixture corpus in one batch and upserts it.
func indexMovies(ctx context.Context, store vectorstore.VectorStore, embedder embedding.EmbeddingModelWithBatch) error {
	corpus := movies.All()

	texts := make([]string, len(corpus))
	for i, m := range corpus {
		texts[i] = m.EmbeddingText()
	}

	vectors, err := embedder.GetTextEmbeddings(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed corpus: %w", err)
	}

	docs := make([]schema.Document, len(corpus))
	for i, m := range corpus {
		docs[i] = m.Document(vectors[i])
	}

	if err := store.Add(ctx, docs); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}

	log.Info("Indexed ", len(docs), " movies")
	return nil
}
