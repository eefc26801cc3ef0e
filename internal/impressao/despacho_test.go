package impressao

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDespacharDuasFases(t *testing.T) {
	destino := &DestinoMemoria{}
	despachante := NovoDespachante(destino)

	doc := Documento{ID: "abc", Titulo: "Proposta Comercial", HTML: "<html></html>"}
	err := despachante.Despachar(context.Background(), doc)

	require.NoError(t, err)
	require.Len(t, destino.Preparados, 1)
	require.Len(t, destino.Emitidos, 1)
	assert.Equal(t, doc, destino.Preparados[0])
	assert.Equal(t, doc, destino.Emitidos[0])
}

// destinoLento nunca sinaliza pronto; o despacho depende do timer.
type destinoLento struct {
	DestinoMemoria
}

func (d *destinoLento) Preparar(_ context.Context, doc Documento) (<-chan struct{}, error) {
	d.Preparados = append(d.Preparados, doc)
	return make(chan struct{}), nil
}

func TestDespacharEmiteAposTolerancia(t *testing.T) {
	destino := &destinoLento{}
	despachante := &Despachante{Destino: destino, EsperaMaxima: 10 * time.Millisecond}

	inicio := time.Now()
	err := despachante.Despachar(context.Background(), Documento{ID: "abc"})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(inicio), 10*time.Millisecond)
	assert.Len(t, destino.Emitidos, 1)
}

func TestDespacharContextoCancelado(t *testing.T) {
	destino := &destinoLento{}
	despachante := &Despachante{Destino: destino, EsperaMaxima: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := despachante.Despachar(ctx, Documento{ID: "abc"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, destino.Emitidos)
}

type destinoComErro struct {
	falhaPreparar bool
	falhaEmitir   bool
}

var errDestino = errors.New("destino indisponível")

func (d *destinoComErro) Preparar(context.Context, Documento) (<-chan struct{}, error) {
	if d.falhaPreparar {
		return nil, errDestino
	}
	pronto := make(chan struct{})
	close(pronto)
	return pronto, nil
}

func (d *destinoComErro) Emitir(context.Context, Documento) error {
	if d.falhaEmitir {
		return errDestino
	}
	return nil
}

func TestDespacharPropagaErros(t *testing.T) {
	err := NovoDespachante(&destinoComErro{falhaPreparar: true}).Despachar(context.Background(), Documento{})
	assert.ErrorIs(t, err, errDestino)
	assert.ErrorContains(t, err, "preparar destino de impressão")

	err = NovoDespachante(&destinoComErro{falhaEmitir: true}).Despachar(context.Background(), Documento{})
	assert.ErrorIs(t, err, errDestino)
	assert.ErrorContains(t, err, "emitir documento")
}

func TestDestinoHTTP(t *testing.T) {
	type recebido struct {
		ID     string `json:"id"`
		Titulo string `json:"titulo"`
		HTML   string `json:"html"`
		Fase   string `json:"fase"`
	}
	var fases []recebido
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var corpo recebido
		require.NoError(t, json.NewDecoder(r.Body).Decode(&corpo))
		fases = append(fases, corpo)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer servidor.Close()

	despachante := NovoDespachante(&DestinoHTTP{URL: servidor.URL, Cliente: servidor.Client()})
	doc := Documento{ID: "abc", Titulo: "Contrato", HTML: "<html></html>"}

	require.NoError(t, despachante.Despachar(context.Background(), doc))
	require.Len(t, fases, 2)
	assert.Equal(t, "preparar", fases[0].Fase)
	assert.Equal(t, "emitir", fases[1].Fase)
	assert.Equal(t, "abc", fases[0].ID)
	assert.Equal(t, "<html></html>", fases[1].HTML)
}

func TestDestinoHTTPRespostaDeErro(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "indisponível", http.StatusServiceUnavailable)
	}))
	defer servidor.Close()

	err := NovoDespachante(&DestinoHTTP{URL: servidor.URL}).Despachar(context.Background(), Documento{ID: "abc"})
	assert.ErrorContains(t, err, "503")
}
