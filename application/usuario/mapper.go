package usuario

import (
	"ecommerce/application/common"
	"ecommerce/domain/usuario"
)

func toPerfil(req PerfilRequest) usuario.Perfil {
	return usuario.Perfil{
		Nome:          req.Nome,
		Email:         req.Email,
		Cpf:           req.Cpf,
		IDBroker:      req.IDBroker,
		IDLoja:        req.IDLoja,
		IDVarejista:   req.IDVarejista,
		EmpresaPadrao: req.EmpresaPadrao,
		VisAutcom:     req.VisAutcom,
		VisAutemp:     req.VisAutemp,
	}
}

func toUsuarioResponse(u *usuario.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		AuditResponse: common.NewAuditResponse(u.Audit),
		Nome:          u.Nome(),
		Email:         u.Email().Value(),
		Cpf:           u.Cpf().Value(),
		IDBroker:      u.IDBroker(),
		IDLoja:        u.IDLoja(),
		IDVarejista:   u.IDVarejista(),
		EmpresaPadrao: u.EmpresaPadrao(),
		VisAutcom:     u.VisAutcom(),
		VisAutemp:     u.VisAutemp(),
	}
}

func toUsuarioResponses(list []*usuario.Usuario) []*UsuarioResponse {
	out := make([]*UsuarioResponse, len(list))
	for i, u := range list {
		out[i] = toUsuarioResponse(u)
	}
	return out
}
