package loja

import (
	"ecommerce/application/common"
	"ecommerce/domain/loja"
)

func toDados(req LojaRequest) loja.Dados {
	return loja.Dados{
		Cnpj:        req.Cnpj,
		Codigo:      req.Codigo,
		IDLojista:   req.IDLojista,
		IDVarejista: req.IDVarejista,
		Nome:        req.Nome,
		Endereco:    req.Endereco,
	}
}

func toLojaResponse(l *loja.Loja) *LojaResponse {
	return &LojaResponse{
		AuditResponse: common.NewAuditResponse(l.Audit),
		Cnpj:          l.Cnpj().Value(),
		Codigo:        l.Codigo(),
		IDLojista:     l.IDLojista(),
		IDVarejista:   l.IDVarejista(),
		Nome:          l.Nome(),
		Endereco:      l.Endereco(),
	}
}

func toLojaResponses(list []*loja.Loja) []*LojaResponse {
	out := make([]*LojaResponse, len(list))
	for i, l := range list {
		out[i] = toLojaResponse(l)
	}
	return out
}
