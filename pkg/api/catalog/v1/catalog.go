// Package catalogv1 holds the JSON contract of the catalog HTTP API.
package catalogv1

import "time"

type BrandRequest struct {
	NomeMarca string `json:"nomeMarca" validate:"required,notblank,min=2,max=100"`
}

type BrandResponse struct {
	ID              int64     `json:"id"`
	NomeMarca       string    `json:"nomeMarca"`
	DataCriacao     time.Time `json:"dataCriacao"`
	DataAtualizacao time.Time `json:"dataAtualizacao"`
}

type ModelRequest struct {
	MarcaID   *int64 `json:"marcaId" validate:"required"`
	Nome      string `json:"nome" validate:"required,notblank,min=2,max=100"`
	ValorFipe *Money `json:"valorFipe" validate:"required,money_gte=0.01,money_lte=999999999999.99"`
}

type ModelResponse struct {
	ID              int64     `json:"id"`
	MarcaID         int64     `json:"marcaId"`
	NomeMarca       string    `json:"nomeMarca"`
	Nome            string    `json:"nome"`
	ValorFipe       *Money    `json:"valorFipe"`
	DataCriacao     time.Time `json:"dataCriacao"`
	DataAtualizacao time.Time `json:"dataAtualizacao"`
}

// CarRequest is the body of car create and update. On create the brand and
// model names are resolved, creating them when absent. On update a non-blank
// NomeModelo wins over ModeloID.
type CarRequest struct {
	ModeloID    *int64 `json:"modeloId"`
	NomeModelo  string `json:"nomeModelo" validate:"omitempty,min=2,max=100"`
	NomeMarca   string `json:"nomeMarca" validate:"omitempty,min=2,max=100"`
	Ano         *int   `json:"ano" validate:"required,gte=1900,lte=2030"`
	Combustivel string `json:"combustivel" validate:"required,notblank"`
	NumPortas   *int   `json:"numPortas" validate:"required,gte=2,lte=5"`
	Cor         string `json:"cor" validate:"required,notblank"`
	Valor       *Money `json:"valor" validate:"required,money_gte=0.01,money_lte=999999999999.99"`
}

type CarResponse struct {
	ID                int64     `json:"id"`
	NomeModelo        string    `json:"nomeModelo"`
	NomeMarca         string    `json:"nomeMarca"`
	Ano               int       `json:"ano"`
	Combustivel       string    `json:"combustivel"`
	NumPortas         int       `json:"numPortas"`
	Cor               string    `json:"cor"`
	Valor             Money     `json:"valor"`
	TimestampCadastro int64     `json:"timestampCadastro"`
	DataCriacao       time.Time `json:"dataCriacao"`
	DataAtualizacao   time.Time `json:"dataAtualizacao"`
}

type ExportCar struct {
	ID                int64  `json:"id"`
	TimestampCadastro int64  `json:"timestamp_cadastro"`
	ModeloID          int64  `json:"modelo_id"`
	Ano               int    `json:"ano"`
	Combustivel       string `json:"combustivel"`
	NumPortas         int    `json:"num_portas"`
	Cor               string `json:"cor"`
	NomeModelo        string `json:"nome_modelo"`
	Valor             Money  `json:"valor"`
	Marca             string `json:"marca"`
}

type ExportResponse struct {
	Cars []ExportCar `json:"cars"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
