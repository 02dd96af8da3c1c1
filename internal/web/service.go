package web

import (
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/internal/config"
	lf "github.com/redflagged/redflagged/internal/logfield"
)

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}

func newWebService(server *server, module string) webService {
	return webService{server, server.config, server.logger.With(lf.Module(module))}
}
