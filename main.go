package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/oncurve/oncurve-api/api"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("oncurve")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Init redis-backed task queue. The server runs without it, persistence
	// retries are simply skipped.
	var machineryServer *machinery.Server
	if viper.GetString("redis.conn") != "" {
		var conf = &machineryconf.Config{
			Broker:        viper.GetString("redis.conn"),
			DefaultQueue:  "oncurve_background",
			ResultBackend: viper.GetString("redis.conn"),
		}

		var err error
		machineryServer, err = machinery.NewServer(conf)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized background task queue")
	}

	// Project metadata lives in postgres. Optional, project registration is
	// disabled when no connection string is given.
	if viper.GetString("orm.conn") != "" {
		var err error
		ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Connected to orm store")
	}

	// Curve and IPD documents live in mongodb. Optional as well.
	var mongoClient *mongo.Client
	if viper.GetString("mongo.conn") != "" {
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))

		var err error
		mongoClient, err = mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		err = mongoClient.Connect(initialCtx)
		if nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}
		log.WithField("prefix", "init").Info("Connected to mongo store")
	}

	// Init http server
	server = api.NewServer(ormDB, mongoClient, machineryServer)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
