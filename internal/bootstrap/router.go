package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpapi "github.com/draftdb-io/draftdb-backend/internal/api/http"
	"github.com/draftdb-io/draftdb-backend/internal/api/http/middleware"
	"github.com/draftdb-io/draftdb-backend/internal/chat"
	"github.com/draftdb-io/draftdb-backend/internal/projects"
)

type RouterDeps struct {
	DB  *pgxpool.Pool
	LLM chat.Generator
	Log *zap.Logger
}

// BuildRouter wires middleware and routes. Nil DB or LLM are allowed: the
// capability guards turn the missing dependency into a per-request 500 while
// the rest of the API keeps serving.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestID(dep.Log))

	api := r.Group("/api")

	httpapi.NewStatusHandler(dep.DB, dep.LLM).Register(api)

	chatGroup := api.Group("")
	chatGroup.Use(middleware.RequireGemini(dep.LLM))
	chat.NewHandler(dep.LLM, dep.Log).Register(chatGroup)

	projectsGroup := api.Group("/projects")
	projectsGroup.Use(middleware.RequireStore(dep.DB))
	projects.NewHandler(projects.NewRepo(dep.DB)).Register(projectsGroup)

	return r
}
