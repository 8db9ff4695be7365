package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/teskilat/backend/pkg/leaselock"
	"github.com/teskilat/backend/pkg/simulation"
)

type AppUser struct {
	UserID      int64
	Role        string
	Permissions []string
}

// App bundles the shared handles handlers need: database pool, queue
// channel, S3 client, JWKS key set, and the simulation pipeline.
type App struct {
	DBConn   *pgxpool.Pool
	Queue    *amqp091.Channel
	Key      *keyfunc.Keyfunc
	S3       *s3.Client
	Importer *simulation.Importer
	Wiper    *simulation.Wiper
	Locks    *leaselock.Client

	MasterAPIKey   string
	MasterUserID   int64
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
