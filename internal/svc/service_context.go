package svc

import (
	"zklense/internal/config"
	"zklense/internal/report"
	"zklense/internal/rpc"
	"zklense/pkg/logger"
)

// ServiceContext 汇集一次 CLI 调用所需的资源：项目配置、RPC 协作方与报告存储。
type ServiceContext struct {
	BasePath  string
	Config    *config.ProjectConfig
	Simulator *rpc.Simulator
	Store     *report.Store
}

// NewServiceContext 加载项目配置并初始化各资源。
func NewServiceContext(basePath string) (*ServiceContext, error) {
	c, err := config.Load(basePath)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		return nil, err
	}

	endpoint := c.EffectiveRPCURL()
	logger.Debugf("[ServiceContext] network=%s rpc=%s", c.Network, endpoint)

	return &ServiceContext{
		BasePath:  basePath,
		Config:    c,
		Simulator: rpc.NewSimulator(endpoint),
		Store:     report.NewStore(basePath),
	}, nil
}
