package main

// @title           ERP Restaurante API
// @version         1.0
// @description     API de comandas, subcomandas, pagamentos, mesas e estoque do restaurante

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
