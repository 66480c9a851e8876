package varejista

import (
	"ecommerce/application/common"
	"ecommerce/domain/varejista"
)

func toDados(req VarejistaRequest) varejista.Dados {
	return varejista.Dados{
		Cnpj:     req.Cnpj,
		Banner:   req.Banner,
		CorFundo: req.CorFundo,
		Codigo:   req.Codigo,
		Nome:     req.Nome,
		Site:     req.Site,
	}
}

func toVarejistaResponse(v *varejista.Varejista) *VarejistaResponse {
	return &VarejistaResponse{
		AuditResponse: common.NewAuditResponse(v.Audit),
		Cnpj:          v.Cnpj().Value(),
		Banner:        v.Banner(),
		CorFundo:      v.CorFundo(),
		Codigo:        v.Codigo(),
		Nome:          v.Nome(),
		Site:          v.Site(),
	}
}

func toVarejistaResponses(list []*varejista.Varejista) []*VarejistaResponse {
	out := make([]*VarejistaResponse, len(list))
	for i, v := range list {
		out[i] = toVarejistaResponse(v)
	}
	return out
}
