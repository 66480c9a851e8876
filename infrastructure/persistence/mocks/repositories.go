package mocks

import (
	"context"

	"ecommerce/domain/broker"
	"ecommerce/domain/brokervarejista"
	"ecommerce/domain/historico"
	"ecommerce/domain/importacao"
	"ecommerce/domain/loja"
	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
	"ecommerce/domain/varejista"
)

type BrokerRepository struct {
	Repository[broker.Broker]
}

func (m *BrokerRepository) GetByNome(ctx context.Context, nome string) (*broker.Broker, error) {
	args := m.Called(ctx, nome)
	return one[broker.Broker](args, 0), args.Error(1)
}

func (m *BrokerRepository) ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error) {
	args := m.Called(ctx, nome, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *BrokerRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*broker.Broker, error) {
	args := m.Called(ctx, varejistaID)
	return many[broker.Broker](args, 0), args.Error(1)
}

func (m *BrokerRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*broker.Broker]) ([]*broker.Broker, error) {
	args := m.Called(ctx, spec)
	return many[broker.Broker](args, 0), args.Error(1)
}

type VarejistaRepository struct {
	Repository[varejista.Varejista]
}

func (m *VarejistaRepository) GetByCnpj(ctx context.Context, cnpj string) (*varejista.Varejista, error) {
	args := m.Called(ctx, cnpj)
	return one[varejista.Varejista](args, 0), args.Error(1)
}

func (m *VarejistaRepository) GetByBrokerID(ctx context.Context, brokerID int64) ([]*varejista.Varejista, error) {
	args := m.Called(ctx, brokerID)
	return many[varejista.Varejista](args, 0), args.Error(1)
}

func (m *VarejistaRepository) ExistsByNome(ctx context.Context, nome string, ignorarID *int64) (bool, error) {
	args := m.Called(ctx, nome, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *VarejistaRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*varejista.Varejista]) ([]*varejista.Varejista, error) {
	args := m.Called(ctx, spec)
	return many[varejista.Varejista](args, 0), args.Error(1)
}

type LojaRepository struct {
	Repository[loja.Loja]
}

func (m *LojaRepository) GetByCnpj(ctx context.Context, cnpj string) (*loja.Loja, error) {
	args := m.Called(ctx, cnpj)
	return one[loja.Loja](args, 0), args.Error(1)
}

func (m *LojaRepository) GetByCodigo(ctx context.Context, codigo string) (*loja.Loja, error) {
	args := m.Called(ctx, codigo)
	return one[loja.Loja](args, 0), args.Error(1)
}

func (m *LojaRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*loja.Loja, error) {
	args := m.Called(ctx, varejistaID)
	return many[loja.Loja](args, 0), args.Error(1)
}

func (m *LojaRepository) GetByLojistaID(ctx context.Context, lojistaID int64) ([]*loja.Loja, error) {
	args := m.Called(ctx, lojistaID)
	return many[loja.Loja](args, 0), args.Error(1)
}

func (m *LojaRepository) ExistsByNome(ctx context.Context, nome string, varejistaID int64, ignorarID *int64) (bool, error) {
	args := m.Called(ctx, nome, varejistaID, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *LojaRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*loja.Loja]) ([]*loja.Loja, error) {
	args := m.Called(ctx, spec)
	return many[loja.Loja](args, 0), args.Error(1)
}

type UsuarioRepository struct {
	Repository[usuario.Usuario]
}

func (m *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	args := m.Called(ctx, email)
	return one[usuario.Usuario](args, 0), args.Error(1)
}

func (m *UsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UsuarioRepository) GetByBrokerID(ctx context.Context, brokerID int64) ([]*usuario.Usuario, error) {
	args := m.Called(ctx, brokerID)
	return many[usuario.Usuario](args, 0), args.Error(1)
}

func (m *UsuarioRepository) GetByLojaID(ctx context.Context, lojaID int64) ([]*usuario.Usuario, error) {
	args := m.Called(ctx, lojaID)
	return many[usuario.Usuario](args, 0), args.Error(1)
}

func (m *UsuarioRepository) GetByVarejistaID(ctx context.Context, varejistaID int64) ([]*usuario.Usuario, error) {
	args := m.Called(ctx, varejistaID)
	return many[usuario.Usuario](args, 0), args.Error(1)
}

func (m *UsuarioRepository) GetAtivos(ctx context.Context) ([]*usuario.Usuario, error) {
	args := m.Called(ctx)
	return many[usuario.Usuario](args, 0), args.Error(1)
}

func (m *UsuarioRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*usuario.Usuario]) ([]*usuario.Usuario, error) {
	args := m.Called(ctx, spec)
	return many[usuario.Usuario](args, 0), args.Error(1)
}

type HistoricoRepository struct {
	Repository[historico.Historico]
}

func (m *HistoricoRepository) GetByUsuarioCod(ctx context.Context, usuarioCod int64) ([]*historico.Historico, error) {
	args := m.Called(ctx, usuarioCod)
	return many[historico.Historico](args, 0), args.Error(1)
}

func (m *HistoricoRepository) GetByEmpresaID(ctx context.Context, idEmpresa int64) ([]*historico.Historico, error) {
	args := m.Called(ctx, idEmpresa)
	return many[historico.Historico](args, 0), args.Error(1)
}

type BrokerVarejistaRepository struct {
	Repository[brokervarejista.BrokerVarejista]
}

func (m *BrokerVarejistaRepository) ExistsRelacionamento(ctx context.Context, idBroker, idVarejista int64) (bool, error) {
	args := m.Called(ctx, idBroker, idVarejista)
	return args.Bool(0), args.Error(1)
}

func (m *BrokerVarejistaRepository) GetByBrokerID(ctx context.Context, idBroker int64) ([]*brokervarejista.BrokerVarejista, error) {
	args := m.Called(ctx, idBroker)
	return many[brokervarejista.BrokerVarejista](args, 0), args.Error(1)
}

func (m *BrokerVarejistaRepository) GetByVarejistaID(ctx context.Context, idVarejista int64) ([]*brokervarejista.BrokerVarejista, error) {
	args := m.Called(ctx, idVarejista)
	return many[brokervarejista.BrokerVarejista](args, 0), args.Error(1)
}

type DetalheRepository struct {
	Repository[importacao.Detalhe]
}

func (m *DetalheRepository) GetByLogID(ctx context.Context, idLog int64) ([]*importacao.Detalhe, error) {
	args := m.Called(ctx, idLog)
	return many[importacao.Detalhe](args, 0), args.Error(1)
}

var (
	_ broker.Repository          = (*BrokerRepository)(nil)
	_ varejista.Repository       = (*VarejistaRepository)(nil)
	_ loja.Repository            = (*LojaRepository)(nil)
	_ usuario.Repository         = (*UsuarioRepository)(nil)
	_ historico.Repository       = (*HistoricoRepository)(nil)
	_ brokervarejista.Repository = (*BrokerVarejistaRepository)(nil)
	_ importacao.Repository      = (*DetalheRepository)(nil)
)
