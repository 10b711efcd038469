package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oncurve/oncurve-api/background"
	"github.com/oncurve/oncurve-api/external/reconstruct"
	"github.com/oncurve/oncurve-api/external/statcomp"
	"github.com/oncurve/oncurve-api/external/vision"
	"github.com/oncurve/oncurve-api/extraction"
	"github.com/oncurve/oncurve-api/ipd"
	"github.com/oncurve/oncurve-api/logmodule"
	"github.com/oncurve/oncurve-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

const defaultServiceTimeout = 120 * time.Second

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.OncurveCore
	mongoStore store.MongoStore

	// Pipeline services
	extraction extraction.Extractor
	ipdService ipd.Generator

	// job pool enqueuer
	background *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server. The relational, mongo and queue
// dependencies are all optional; an unconfigured store only disables
// persistence, never the pipeline itself.
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server) *Server {
	timeout := viper.GetDuration("service.timeout")
	if timeout == 0 {
		timeout = defaultServiceTimeout
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	var core store.OncurveCore
	var registry store.ArtifactRegistry
	if ormDB != nil {
		oncurveStore := store.NewOncurveStore(ormDB)
		core = oncurveStore
		registry = oncurveStore
	}

	var mongoStore store.MongoStore
	var ipdStore store.IPDStore
	if mongoClient != nil {
		mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
		ipdStore = mongoStore
	}

	var enqueuer ipd.Enqueuer
	if backgroundServer != nil {
		enqueuer = background.NewEnqueuer(backgroundServer)
	}

	return &Server{
		store:      core,
		mongoStore: mongoStore,
		extraction: extraction.NewService(vision.New(httpClient, viper.GetString("service.vision"))),
		ipdService: ipd.NewService(
			reconstruct.New(httpClient, viper.GetString("service.reconstruct")),
			statcomp.New(httpClient, viper.GetString("service.statcomp")),
			ipdStore,
			registry,
			enqueuer,
			viper.GetString("ipd.output_dir")),
		background: backgroundServer,
		httpClient: httpClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.POST("/extraction", s.extractCurve)
	apiRoute.POST("/ipd", s.generateIPD)
	apiRoute.POST("/validation", s.validateKMData)
	apiRoute.POST("/project", s.createProject)
	apiRoute.GET("/project/:projectID", s.getProject)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db when one is configured
	if s.store != nil {
		err := s.store.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Oncurve 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
