// Package viewer 提供本地报告查看服务：把持久化的 report.json
// 以宽松 CORS 返回给任意 GET 请求，供前端 viewer 拉取。
package viewer

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"zklense/internal/report"
	"zklense/pkg/logger"
)

// Server 是只读的报告查看 HTTP 服务。
type Server struct {
	store    *report.Store
	listener net.Listener
}

// NewServer 绑定本地随机端口（port=0）或指定端口。
func NewServer(store *report.Store, port int) (*Server, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind viewer port: %w", err)
	}
	return &Server{store: store, listener: ln}, nil
}

// Port 返回实际监听端口。
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Serve 阻塞服务直到监听器关闭。
// 每次请求都重读报告文件：viewer 打开期间重新 simulate 后刷新即可看到新报告。
func (s *Server) Serve() error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// 宽松 CORS：viewer 前端跑在任意源上
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// 任意 GET 路径（含 /data.json）都返回报告原文
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusMethodNotAllowed)
			return
		}
		data, err := s.store.LoadRaw()
		if err != nil {
			logger.Warnf("[Viewer:Serve] 读取报告失败: %v", err)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	logger.Infof("[Viewer:Serve] serving report on 127.0.0.1:%d", s.Port())
	return http.Serve(s.listener, router)
}

// Close 关闭监听器，使 Serve 返回。
func (s *Server) Close() error {
	return s.listener.Close()
}
