package middleware

import (
	"deltasylva_site/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestLogger logs one structured line per request
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				kv = append(kv, "error", v.Error.Error())
			}
			switch {
			case v.Status >= 500:
				log.Error("request failed", kv...)
			case v.Status >= 400:
				log.Warn("request", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		},
	})
}
