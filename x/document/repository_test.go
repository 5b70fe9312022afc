package document

import (
	"context"
	"flag"
	"log"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/internal/testutil"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB
var rdb *redis.Client
var mc *memcache.Client

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		m.Run()
		return
	}

	log.Println("Test Start")

	var cleanupDB func()
	db, cleanupDB = testutil.CreateDB()
	defer cleanupDB()

	var cleanupRDB func()
	rdb, cleanupRDB = testutil.CreateRDB()
	defer cleanupRDB()

	var cleanupMC func()
	mc, cleanupMC = testutil.CreateMC()
	defer cleanupMC()

	repo = NewRepository(db, rdb, mc, util.Config{})

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {
	if repo == nil {
		t.Skip("requires docker")
	}

	doc := core.Document{
		ID:           "cn1repo0000000000001",
		TenantID:     Tenant1,
		Name:         "bol-4411",
		DocumentType: core.DocumentTypeBOL,
		EntityType:   core.EntityTypeCarrier,
		EntityID:     Carrier1,
		CarrierID:    Carrier1,
		MimeType:     "text/plain",
		FileName:     "bol-4411.txt",
		Content:      []byte("bill of lading"),
		Size:         14,
		Tags:         []string{"urgent"},
	}

	created, err := repo.Create(ctx, doc)
	if assert.NoError(t, err) {
		assert.Equal(t, doc.ID, created.ID)
	}

	count, err := repo.Count(ctx, Tenant1)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}

	// other tenants never see the document
	_, err = repo.Get(ctx, Tenant2, doc.ID)
	assert.ErrorAs(t, err, new(core.ErrorNotFound))

	got, err := repo.Get(ctx, Tenant1, doc.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "bol-4411", got.Name)
		assert.Empty(t, got.Content)
	}

	// served from redis
	cached, err := rdb.Exists(ctx, cacheKey(Tenant1, doc.ID)).Result()
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), cached)
	}

	content, err := repo.GetContent(ctx, Tenant1, doc.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "bill of lading", string(content))
	}

	docs, total, err := repo.List(ctx, Tenant1, core.DocumentFilter{EntityType: core.EntityTypeCarrier, EntityID: Carrier1}, core.PageQuery{Page: 1, Limit: 10})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), total)
		assert.Len(t, docs, 1)
	}

	docs, total, err = repo.List(ctx, Tenant1, core.DocumentFilter{DocumentType: core.DocumentTypeW9}, core.PageQuery{Page: 1, Limit: 10})
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), total)
		assert.Len(t, docs, 0)
	}

	got.Name = "bol-4411-signed"
	updated, err := repo.Update(ctx, got)
	if assert.NoError(t, err) {
		assert.Equal(t, "bol-4411-signed", updated.Name)
	}

	_, err = repo.Update(ctx, core.Document{ID: doc.ID, TenantID: Tenant2, Name: "stolen"})
	assert.ErrorAs(t, err, new(core.ErrorNotFound))

	err = repo.Delete(ctx, Tenant2, doc.ID)
	assert.ErrorAs(t, err, new(core.ErrorNotFound))

	err = repo.Delete(ctx, Tenant1, doc.ID)
	assert.NoError(t, err)

	_, err = repo.Get(ctx, Tenant1, doc.ID)
	assert.ErrorAs(t, err, new(core.ErrorNotFound))

	count, err = repo.Count(ctx, Tenant1)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), count)
	}
}

func TestRepositoryListScope(t *testing.T) {
	if repo == nil {
		t.Skip("requires docker")
	}

	const tenant = "tenant-initech"
	docs := []core.Document{
		{ID: "cn1scope000000000001", DocumentType: core.DocumentTypeBOL, EntityType: core.EntityTypeCarrier, EntityID: Carrier1},
		{ID: "cn1scope000000000002", DocumentType: core.DocumentTypeBOL, EntityType: core.EntityTypeCarrier, EntityID: Carrier2},
		{ID: "cn1scope000000000003", DocumentType: core.DocumentTypePOD, EntityType: core.EntityTypeCarrier, EntityID: Carrier2, CarrierID: Carrier1},
		{ID: "cn1scope000000000004", DocumentType: core.DocumentTypeTax, EntityType: core.EntityTypeCarrier, EntityID: Carrier1},
		{ID: "cn1scope000000000005", DocumentType: core.DocumentTypeInsurance, EntityType: core.EntityTypeCarrier, EntityID: Carrier1},
		{ID: "cn1scope000000000006", DocumentType: core.DocumentTypeInvoice, EntityType: core.EntityTypeCompany, EntityID: Company1},
		{ID: "cn1scope000000000007", DocumentType: core.DocumentTypeInvoice, EntityType: core.EntityTypeCompany, EntityID: "company-other"},
		{ID: "cn1scope000000000008", DocumentType: core.DocumentTypeRateConfirmation, EntityType: core.EntityTypeLoad, EntityID: "load-1"},
	}
	for _, doc := range docs {
		doc.TenantID = tenant
		doc.Name = doc.ID
		_, err := repo.Create(ctx, doc)
		assert.NoError(t, err)
	}
	defer func() {
		for _, doc := range docs {
			_ = repo.Delete(ctx, tenant, doc.ID)
		}
	}()

	ids := func(scope core.DocumentScope) []string {
		found, total, err := repo.List(ctx, tenant, core.DocumentFilter{Scope: scope}, core.PageQuery{Page: 1, Limit: 20})
		if !assert.NoError(t, err) {
			return nil
		}
		assert.Equal(t, int64(len(found)), total)
		result := make([]string, 0, len(found))
		for _, doc := range found {
			result = append(result, doc.ID)
		}
		return result
	}

	testCases := []struct {
		name     string
		scope    core.DocumentScope
		expected []string
	}{
		{"all", core.DocumentScope{All: true}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"unprivileged hides restricted types", core.DocumentScope{}, []string{"1", "2", "3", "6", "7", "8"}},
		{"accounting", core.DocumentScope{Financial: true, Compliance: true}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"carrier", core.DocumentScope{CarrierOwnership: true, CarrierLinks: []string{Carrier1}}, []string{"1", "3", "6", "7", "8"}},
		{"carrier without id", core.DocumentScope{CarrierOwnership: true}, []string{"6", "7", "8"}},
		{"customer", core.DocumentScope{CustomerOwnership: true, CustomerLinks: []string{Company1}}, []string{"1", "2", "3", "6", "8"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expected := make([]string, 0, len(tc.expected))
			for _, suffix := range tc.expected {
				expected = append(expected, "cn1scope00000000000"+suffix)
			}
			assert.ElementsMatch(t, expected, ids(tc.scope))
		})
	}
}
