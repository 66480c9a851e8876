package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/domain/broker"
	"ecommerce/domain/shared"
	"ecommerce/domain/usuario"
	"ecommerce/domain/varejista"
)

var brokerColumns = []string{"IdBroker", "NmBroker", "CreatedAt", "UpdatedAt", "CreatedBy", "UpdatedBy", "IsActive"}

func TestBrokerRepository_AddAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)

	b, err := broker.New("Acme", "alice")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Brokers`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Add(context.Background(), b))
	assert.Equal(t, int64(7), b.ID())

	events := b.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "7", events[0].GetAggregateID())
}

func TestBrokerRepository_AddDuplicateIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)

	b, err := broker.New("Acme", "alice")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Brokers`").
		WillReturnError(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry 'Acme'"})
	mock.ExpectRollback()

	err = repo.Add(context.Background(), b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConflict))
	assert.Zero(t, b.ID())
}

func TestBrokerRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `Brokers` WHERE IdBroker = \\?").
		WillReturnRows(sqlmock.NewRows(brokerColumns).AddRow(5, "Acme", created, nil, "alice", "", true))

	b, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), b.ID())
	assert.Equal(t, "Acme", b.Nome())
	assert.Equal(t, "alice", b.CreatedBy())
	assert.Equal(t, created, b.CreatedAt())
	assert.Nil(t, b.UpdatedAt())
	assert.True(t, b.IsActive())
	assert.Empty(t, b.PendingEvents())
}

func TestBrokerRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `Brokers` WHERE IdBroker = \\?").
		WillReturnRows(sqlmock.NewRows(brokerColumns))

	b, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestBrokerRepository_GetByNomeAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `Brokers` WHERE NmBroker = \\?").
		WillReturnRows(sqlmock.NewRows(brokerColumns))

	b, err := repo.GetByNome(context.Background(), "  Nobody ")
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestBrokerRepository_ExistsByNomeIgnoringID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	ignore := int64(3)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `Brokers` WHERE NmBroker = \\? AND IdBroker <> \\?").
		WithArgs("Acme", ignore).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByNome(context.Background(), "Acme", &ignore)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBrokerRepository_GetByVarejistaIDUsesLinkTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT \\* FROM `Brokers` WHERE IdBroker IN \\(SELECT IdBroker FROM `Brokers_Varejistas` WHERE IdVarejista = \\?\\)").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(brokerColumns).
			AddRow(1, "Acme", now, nil, "alice", "", true).
			AddRow(2, "Beta", now, nil, "alice", "", false))

	brokers, err := repo.GetByVarejistaID(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, brokers, 2)
	assert.Equal(t, "Beta", brokers[1].Nome())
	assert.False(t, brokers[1].IsActive())
}

func TestBrokerRepository_FindBySpecificationPushesDownQuerySpecs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT \\* FROM `Brokers` WHERE .*`NmBroker` <> \\? AND `IsActive` = \\?").
		WithArgs("", true).
		WillReturnRows(sqlmock.NewRows(brokerColumns).AddRow(1, "Acme", now, nil, "alice", "", true))

	brokers, err := repo.FindBySpecification(context.Background(), broker.NewValidBrokerSpecification())
	require.NoError(t, err)
	require.Len(t, brokers, 1)
}

func TestBrokerRepository_FindBySpecificationFiltersInMemory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	now := time.Now().UTC()

	startsWithA := shared.SpecFunc[*broker.Broker](func(_ context.Context, b *broker.Broker) bool {
		return b.Nome()[0] == 'A'
	})

	mock.ExpectQuery("SELECT \\* FROM `Brokers` ORDER BY IdBroker").
		WillReturnRows(sqlmock.NewRows(brokerColumns).
			AddRow(1, "Acme", now, nil, "alice", "", true).
			AddRow(2, "Beta", now, nil, "alice", "", true))

	brokers, err := repo.FindBySpecification(context.Background(), startsWithA)
	require.NoError(t, err)
	require.Len(t, brokers, 1)
	assert.Equal(t, "Acme", brokers[0].Nome())
}

func TestBrokerRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `Brokers` WHERE IdBroker = \\?").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 4)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestBrokerRepository_UpdateUnchangedRowIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerRepository(db)
	b := broker.Rebuild(shared.AuditSnapshot{ID: 5, CreatedAt: time.Now().UTC(), CreatedBy: "alice", IsActive: true}, "Acme")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `Brokers` SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `Brokers` WHERE IdBroker = \\?").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	assert.NoError(t, repo.Update(context.Background(), b))
}

func TestBrokerRepository_UpdateRequiresID(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewBrokerRepository(db)

	b, err := broker.New("Acme", "alice")
	require.NoError(t, err)

	err = repo.Update(context.Background(), b)
	assert.True(t, errors.Is(err, shared.ErrArgument))
}

func TestVarejistaRepository_GetByCnpjStripsFormatting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVarejistaRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `Varejistas` WHERE CdCnpj = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"IdVarejista", "CdCnpj", "NmVarejista", "CdVarejista", "CreatedAt", "CreatedBy", "IsActive"}).
			AddRow(3, "11222333000181", "Loja Grande", "LG", time.Now().UTC(), "alice", true))

	v, err := repo.GetByCnpj(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "11222333000181", v.Cnpj().Value())
	assert.True(t, varejista.NewValidVarejistaSpecification().IsSatisfiedBy(context.Background(), v))
}

func TestUsuarioRepository_ExistsByEmailNormalizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsuarioRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `Usuarios` WHERE Usuarios_Ema = \\?").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByEmail(context.Background(), " Ana@Example.com ")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUsuarioRepository_RoundTripKeepsHashes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsuarioRepository(db)

	u, err := usuario.New(usuario.Perfil{Nome: "Ana", Email: "ana@example.com", Cpf: "12345678901"}, "s3cret", "alice")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `Usuarios` WHERE Usuarios_Ema = \\?").
		WillReturnRows(sqlmock.NewRows([]string{
			"Usuarios_Cod", "Usuarios_Nom", "Usuarios_Ema", "Usuarios_Cpf", "Usuarios_Sen", "SenhaAnterior",
			"Usuarios_EmpPad", "CreatedAt", "CreatedBy", "IsActive",
		}).AddRow(11, "Ana", "ana@example.com", "12345678901", u.Senha().Hash(), "", 1, time.Now().UTC(), "alice", true))

	loaded, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(11), loaded.ID())
	assert.True(t, loaded.PodeAcessar("s3cret"))
	assert.False(t, loaded.PodeAcessar("wrong"))
}

func TestBrokerVarejistaRepository_ExistsRelacionamento(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrokerVarejistaRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `Brokers_Varejistas` WHERE IdBroker = \\? AND IdVarejista = \\?").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsRelacionamento(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)

}
