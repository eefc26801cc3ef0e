// Package impressao entrega documentos renderizados ao destino de
// impressão. A versão web abria uma janela, esperava o carregamento e
// chamava o diálogo de impressão; aqui isso vira um protocolo de duas
// fases explícito: preparar o destino, aguardar o sinal de pronto (ou
// o timer de tolerância) e então emitir. Falha de entrega é devolvida
// ao caller em vez de sumir em silêncio.
package impressao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Documento é o artefato pronto para impressão.
type Documento struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
	HTML   string `json:"html"`
}

// Destino recebe documentos em duas fases. Preparar entrega o conteúdo
// e devolve um canal fechado quando o destino estiver pronto; Emitir
// dispara a impressão propriamente dita.
type Destino interface {
	Preparar(ctx context.Context, doc Documento) (<-chan struct{}, error)
	Emitir(ctx context.Context, doc Documento) error
}

// Despachante coordena as duas fases com o timer de tolerância: se o
// destino não sinalizar pronto dentro de EsperaMaxima, emite mesmo
// assim, espelhando o fallback de tempo fixo da versão original.
type Despachante struct {
	Destino      Destino
	EsperaMaxima time.Duration
}

const esperaPadrao = 2 * time.Second

// NovoDespachante cria um despachante com a tolerância padrão.
func NovoDespachante(destino Destino) *Despachante {
	return &Despachante{Destino: destino, EsperaMaxima: esperaPadrao}
}

// Despachar executa o protocolo completo. Qualquer falha de entrega é
// reportada ao caller.
func (d *Despachante) Despachar(ctx context.Context, doc Documento) error {
	pronto, err := d.Destino.Preparar(ctx, doc)
	if err != nil {
		return fmt.Errorf("preparar destino de impressão: %w", err)
	}

	espera := d.EsperaMaxima
	if espera <= 0 {
		espera = esperaPadrao
	}
	timer := time.NewTimer(espera)
	defer timer.Stop()

	select {
	case <-pronto:
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := d.Destino.Emitir(ctx, doc); err != nil {
		return fmt.Errorf("emitir documento: %w", err)
	}
	return nil
}

// DestinoHTTP empurra o documento para um endpoint externo (serviço de
// PDF, fila de impressão). O pronto é sinalizado assim que o endpoint
// aceita a fase de preparação.
type DestinoHTTP struct {
	URL     string
	Cliente *http.Client
}

func (d *DestinoHTTP) cliente() *http.Client {
	if d.Cliente != nil {
		return d.Cliente
	}
	return http.DefaultClient
}

func (d *DestinoHTTP) postar(ctx context.Context, fase string, doc Documento) error {
	payload, err := json.Marshal(struct {
		Documento
		Fase string `json:"fase"`
	}{doc, fase})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.cliente().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("destino respondeu %d na fase %s", resp.StatusCode, fase)
	}
	return nil
}

func (d *DestinoHTTP) Preparar(ctx context.Context, doc Documento) (<-chan struct{}, error) {
	if err := d.postar(ctx, "preparar", doc); err != nil {
		return nil, err
	}
	pronto := make(chan struct{})
	close(pronto)
	return pronto, nil
}

func (d *DestinoHTTP) Emitir(ctx context.Context, doc Documento) error {
	return d.postar(ctx, "emitir", doc)
}

// DestinoMemoria guarda o último documento emitido; serve a testes e
// ao modo de pré-visualização do admin, que só precisa do HTML.
type DestinoMemoria struct {
	Preparados []Documento
	Emitidos   []Documento
}

func (d *DestinoMemoria) Preparar(_ context.Context, doc Documento) (<-chan struct{}, error) {
	d.Preparados = append(d.Preparados, doc)
	pronto := make(chan struct{})
	close(pronto)
	return pronto, nil
}

func (d *DestinoMemoria) Emitir(_ context.Context, doc Documento) error {
	d.Emitidos = append(d.Emitidos, doc)
	return nil
}
