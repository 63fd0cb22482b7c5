// File: cmd/service/main.go
// @title        IAPedia API
// @version      1.0
// @description  IAPedia 的後端 API 文件：AI 工具目錄、評論與收藏
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
