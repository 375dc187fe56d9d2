package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"biblio/config"
	cursoControllers "biblio/controllers/cursos"
	usuarioControllers "biblio/controllers/usuarios"
	"biblio/database"
	"biblio/logic"
	"biblio/routers/cursoRoutes"
	"biblio/routers/usuarioRoutes"
	"biblio/seed"
)

func main() {
	config.LoadConfig()

	ctx := context.Background()
	client, err := database.Connect(ctx, config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(config.AppConfig.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	usuarioStore := database.NewUsuarioStore(db)
	cursoStore := database.NewCursoStore(db)

	// Seed runs before the server starts accepting requests; seed failures
	// are logged inside Run and never abort startup.
	seed.Run(ctx, usuarioStore, cursoStore)

	omitir := config.AppConfig.ColeccionOmitirExistentes
	usuarioService := logic.NewUsuarioService(usuarioStore, cursoStore, omitir)
	cursoService := logic.NewCursoService(cursoStore, usuarioStore, omitir)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	usuarioRoutes.SetupUsuarioRoutes(app, usuarioControllers.NewUsuarioController(usuarioService))
	cursoRoutes.SetupCursoRoutes(app, cursoControllers.NewCursoController(cursoService))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
