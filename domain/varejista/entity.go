package varejista

import (
	"strings"
	"time"

	"ecommerce/domain/shared"
)

const entityName = "varejista"

// Dados groups the editable fields of a retailer.
type Dados struct {
	Cnpj     string
	Banner   string
	CorFundo string
	Codigo   string
	Nome     string
	Site     string
}

func (d Dados) normalized() Dados {
	return Dados{
		Cnpj:     strings.TrimSpace(d.Cnpj),
		Banner:   strings.TrimSpace(d.Banner),
		CorFundo: strings.TrimSpace(d.CorFundo),
		Codigo:   strings.TrimSpace(d.Codigo),
		Nome:     strings.TrimSpace(d.Nome),
		Site:     strings.TrimSpace(d.Site),
	}
}

// Varejista is the retailer aggregate; it owns stores (Lojas).
type Varejista struct {
	shared.Audit
	shared.EventRecorder

	cnpj     shared.Cnpj
	banner   string
	corFundo string
	codigo   string
	nome     string
	site     string
}

func New(d Dados, createdBy string) (*Varejista, error) {
	d = d.normalized()
	audit := shared.NewAudit(createdBy, time.Now())
	cnpj, result := validate(d)
	if err := shared.Combine(result, shared.ValidateAudit(audit)).Err(entityName); err != nil {
		return nil, err
	}

	v := &Varejista{Audit: audit}
	v.apply(d, cnpj)
	v.Record(NewVarejistaEvent(v.ID(), v.nome, v.cnpj.Value(), v.CreatedBy()))
	return v, nil
}

func validate(d Dados) (shared.Cnpj, shared.ValidationResult) {
	v := shared.NewValidator().
		Required(d.Cnpj, "CNPJ").
		CNPJ(d.Cnpj, "CNPJ").
		MaxLength(d.Banner, 50, "Banner").
		MaxLength(d.CorFundo, 50, "Cor de fundo").
		MaxLength(d.Codigo, 50, "Código").
		Required(d.Nome, "Nome").
		MaxLength(d.Nome, 100, "Nome").
		MaxLength(d.Site, 255, "Site")
	result := v.Result()
	if !result.IsValid() {
		return shared.Cnpj{}, result
	}
	cnpj, err := shared.NewCnpj(d.Cnpj)
	if err != nil {
		return shared.Cnpj{}, shared.NewValidationResult(shared.Violation{Field: "CNPJ", Code: shared.CodeCNPJ, Message: "CNPJ inválido"})
	}
	return cnpj, result
}

func (v *Varejista) apply(d Dados, cnpj shared.Cnpj) {
	v.cnpj = cnpj
	v.banner = d.Banner
	v.corFundo = d.CorFundo
	v.codigo = d.Codigo
	v.nome = d.Nome
	v.site = d.Site
}

// AtualizarDados replaces every editable field at once, or nothing at all.
func (v *Varejista) AtualizarDados(d Dados, updatedBy string) error {
	d = d.normalized()
	cnpj, result := validate(d)
	if err := result.Err(entityName); err != nil {
		return err
	}
	if err := shared.TouchUpdatedBy(&v.Audit, updatedBy, time.Now()); err != nil {
		return err
	}
	v.apply(d, cnpj)
	return nil
}

func (v *Varejista) Activate(by string) error {
	return shared.Activate(&v.Audit, by, time.Now())
}

func (v *Varejista) Deactivate(by string) error {
	return shared.Deactivate(&v.Audit, by, time.Now())
}

func (v *Varejista) Cnpj() shared.Cnpj { return v.cnpj }
func (v *Varejista) Banner() string    { return v.banner }
func (v *Varejista) CorFundo() string  { return v.corFundo }
func (v *Varejista) Codigo() string    { return v.codigo }
func (v *Varejista) Nome() string      { return v.nome }
func (v *Varejista) Site() string      { return v.site }

func (v *Varejista) Dados() Dados {
	return Dados{
		Cnpj:     v.cnpj.Value(),
		Banner:   v.banner,
		CorFundo: v.corFundo,
		Codigo:   v.codigo,
		Nome:     v.nome,
		Site:     v.site,
	}
}

func (v *Varejista) AssignID(id int64) {
	shared.AssignID(&v.Audit, id)
	v.Rewrite(func(e shared.DomainEvent) shared.DomainEvent {
		if ve, ok := e.(*VarejistaEvent); ok && ve.varejistaID == 0 {
			clone := *ve
			clone.varejistaID = id
			return &clone
		}
		return e
	})
}

// Rebuild restores a Varejista loaded from storage. Repositories only.
func Rebuild(audit shared.AuditSnapshot, d Dados) *Varejista {
	v := &Varejista{Audit: shared.RestoreAudit(audit)}
	cnpj, err := shared.NewCnpj(d.Cnpj)
	if err != nil {
		cnpj = shared.Cnpj{}
	}
	v.apply(d, cnpj)
	return v
}

var _ shared.AggregateRoot = (*Varejista)(nil)
