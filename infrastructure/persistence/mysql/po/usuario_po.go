package po

import "ecommerce/domain/usuario"

type UsuarioPO struct {
	Usuarios_Cod       int64  `gorm:"column:Usuarios_Cod;primaryKey;autoIncrement"`
	IdBroker           int64  `gorm:"column:IdBroker;index"`
	IdLoja             int64  `gorm:"column:IdLoja;index"`
	IdVarejista        int64  `gorm:"column:IdVarejista;index"`
	SenhaAnterior      string `gorm:"column:SenhaAnterior;size:200"`
	Usuarios_Cpf       string `gorm:"column:Usuarios_Cpf;size:11"`
	Usuarios_Ema       string `gorm:"column:Usuarios_Ema;size:200;uniqueIndex"`
	Usuarios_EmpPad    int    `gorm:"column:Usuarios_EmpPad;not null"`
	Usuarios_Nom       string `gorm:"column:Usuarios_Nom;size:100;not null"`
	Usuarios_Sen       string `gorm:"column:Usuarios_Sen;size:200;not null"`
	Usuarios_VisAutcom bool   `gorm:"column:Usuarios_VisAutcom"`
	Usuarios_VisAutemp bool   `gorm:"column:Usuarios_VisAutemp"`
	AuditColumns
}

func (UsuarioPO) TableName() string {
	return "Usuarios"
}

func FromUsuarioDomain(u *usuario.Usuario) *UsuarioPO {
	return &UsuarioPO{
		Usuarios_Cod:       u.ID(),
		IdBroker:           u.IDBroker(),
		IdLoja:             u.IDLoja(),
		IdVarejista:        u.IDVarejista(),
		SenhaAnterior:      u.SenhaAnterior().Hash(),
		Usuarios_Cpf:       u.Cpf().Value(),
		Usuarios_Ema:       u.Email().Value(),
		Usuarios_EmpPad:    u.EmpresaPadrao(),
		Usuarios_Nom:       u.Nome(),
		Usuarios_Sen:       u.Senha().Hash(),
		Usuarios_VisAutcom: u.VisAutcom(),
		Usuarios_VisAutemp: u.VisAutemp(),
		AuditColumns:       auditColumns(u.Audit),
	}
}

func (p *UsuarioPO) ToDomain() *usuario.Usuario {
	return usuario.Rebuild(p.snapshot(p.Usuarios_Cod), usuario.Perfil{
		Nome:          p.Usuarios_Nom,
		Email:         p.Usuarios_Ema,
		Cpf:           p.Usuarios_Cpf,
		IDBroker:      p.IdBroker,
		IDLoja:        p.IdLoja,
		IDVarejista:   p.IdVarejista,
		EmpresaPadrao: p.Usuarios_EmpPad,
		VisAutcom:     p.Usuarios_VisAutcom,
		VisAutemp:     p.Usuarios_VisAutemp,
	}, usuario.Credenciais{
		Senha:         p.Usuarios_Sen,
		SenhaAnterior: p.SenhaAnterior,
	})
}
