package historico

import (
	"ecommerce/application/common"
	"ecommerce/domain/historico"
)

func toDados(req RegistrarRequest) historico.Dados {
	return historico.Dados{
		Acao:       req.Acao,
		Detalhe:    req.Detalhe,
		Tabela:     req.Tabela,
		IDEmpresa:  req.IDEmpresa,
		UsuarioCod: req.UsuarioCod,
	}
}

func toHistoricoResponse(h *historico.Historico) *HistoricoResponse {
	return &HistoricoResponse{
		AuditResponse: common.NewAuditResponse(h.Audit),
		Acao:          h.Acao().Value(),
		Data:          h.Data(),
		Detalhe:       h.Detalhe(),
		Tabela:        h.Tabela(),
		IDEmpresa:     h.IDEmpresa(),
		UsuarioCod:    h.UsuarioCod(),
	}
}

func toHistoricoResponses(list []*historico.Historico) []*HistoricoResponse {
	out := make([]*HistoricoResponse, len(list))
	for i, h := range list {
		out[i] = toHistoricoResponse(h)
	}
	return out
}
