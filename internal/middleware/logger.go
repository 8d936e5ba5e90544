package middleware

import (
	"errors"

	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger 以 zap 記錄每個請求；5xx 與非 HTTPError 的錯誤記為 error，4xx 記為 warn
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.RequestID != "" {
				fields = append(fields, zap.String("request_id", v.RequestID))
			}
			if claims, ok := c.Get(ContextUserKey).(*service.CustomClaims); ok {
				fields = append(fields, zap.Int("user_id", claims.UserID))
			}
			switch {
			case v.Status >= 500 || (v.Error != nil && !isClientError(v.Error)):
				log.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil || v.Status >= 400:
				log.Warn("request", append(fields, zap.Error(v.Error))...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}

// isClientError 判斷 err 是否為 4xx 的 *echo.HTTPError；
// 未轉換的錯誤在 echo 4.9 仍帶著 200 狀態，須視為伺服器錯誤
func isClientError(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he) && he.Code < 500
}
