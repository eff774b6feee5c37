// Package api - Single-page calculator form
package api

import (
	"html/template"
	"net/http"
)

var page = template.Must(template.New("calc").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>Battery Cabinet Pricing Calculator</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;background:#fafafa}
.card{max-width:640px;border:1px solid #ddd;border-radius:12px;padding:24px;background:#fff}
label{display:block;margin-top:12px;font-weight:600}
input,select{width:100%;padding:8px;margin-top:4px;border:1px solid #bbb;border-radius:6px;box-sizing:border-box}
.row{display:flex;gap:12px}.row>div{flex:1}
button{margin-top:16px;padding:10px 18px;border-radius:8px;border:none;background:#0a6847;color:#fff;font-size:15px;cursor:pointer}
.result{margin-top:20px;padding:16px;border-radius:8px;background:#f0f7f4;display:none}
.err{background:#fdecea;color:#b00020}
.total{font-size:22px;font-weight:700}
.small{font-size:12px;color:#666;margin-top:8px}
table{width:100%;border-collapse:collapse;margin-top:8px}
td{padding:4px 0;border-bottom:1px solid #eee}
td:last-child{text-align:right}
</style>
</head>
<body>
<div class="card">
  <h2>Battery Cabinet Pricing Calculator</h2>
  <p>Estimates prices for custom cabinet configurations by interpolating
  over the preconfigured model catalog.</p>

  <label for="config">Cabinet class</label>
  <select id="config"></select>

  <div class="row">
    <div>
      <label for="kwh">Energy (kWh)</label>
      <input id="kwh" type="number" step="0.1" min="0" value="40" />
    </div>
    <div>
      <label for="kw">Power (kW, optional)</label>
      <input id="kw" type="number" step="1" min="0" />
    </div>
  </div>

  <div class="row">
    <div>
      <label for="tariff">Tariff rate (%)</label>
      <input id="tariff" type="number" step="0.5" min="0" value="64.5" />
    </div>
    <div>
      <label for="bounds">Out-of-range handling</label>
      <select id="bounds">
        <option value="clamp">Clamp to nearest model</option>
        <option value="strict">Reject</option>
      </select>
    </div>
  </div>

  <label><input id="exclude" type="checkbox" style="width:auto" /> Exclude tariff from total</label>

  <button id="calc">Calculate Price</button>

  <div id="result" class="result"></div>
  <div class="small">Served by BatteryPricePro {{.Version}}</div>
</div>

<script>
function esc(s) {
  const d = document.createElement('div');
  d.textContent = String(s);
  return d.innerHTML;
}

async function loadConfigs() {
  const res = await fetch('api/configurations');
  const data = await res.json();
  const sel = document.getElementById('config');
  for (const c of data.configurations) {
    const opt = document.createElement('option');
    opt.value = c.id;
    opt.textContent = c.label + ' (' + c.min_kwh + '-' + c.max_kwh + ' kWh)';
    sel.appendChild(opt);
  }
}

async function calculate() {
  const body = {
    configuration: document.getElementById('config').value,
    capacity_kwh: parseFloat(document.getElementById('kwh').value),
    exclude_tariff: document.getElementById('exclude').checked,
    tariff_percent: parseFloat(document.getElementById('tariff').value),
    bounds: document.getElementById('bounds').value
  };
  const kw = parseFloat(document.getElementById('kw').value);
  if (!isNaN(kw) && kw > 0) body.power_kw = kw;

  const res = await fetch('api/quote', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body)
  });
  const data = await res.json();
  const el = document.getElementById('result');
  el.style.display = 'block';

  if (data.status !== 'success') {
    el.className = 'result err';
    el.textContent = data.error.code + ': ' + data.error.message;
    return;
  }

  const q = data.quote;
  el.className = 'result';
  let html = '<div class="total">$' + Number(q.total_price).toLocaleString() + '</div><table>';
  html += '<tr><td>Base price (no tariff)</td><td>$' + Number(q.tariff.base_price).toLocaleString() + '</td></tr>';
  html += '<tr><td>Tariff (' + esc(q.tariff.rate_percent) + '%)</td><td>$' + Number(q.tariff.tariff_amount).toLocaleString() + '</td></tr>';
  html += '<tr><td>Modules needed</td><td>' + esc(q.modules.needed) + ' &times; ' + esc(q.modules.size_kwh) + ' kWh</td></tr>';
  html += '<tr><td>Price per module</td><td>$' + Number(q.modules.price_per_module).toLocaleString() + '</td></tr>';
  html += '<tr><td>Pricing method</td><td>' + esc(q.estimate.method) + '</td></tr></table>';
  for (const a of (q.assumptions || [])) {
    html += '<div class="small">Assumption: ' + esc(a) + '</div>';
  }
  el.innerHTML = html;
}

document.getElementById('calc').addEventListener('click', calculate);
loadConfigs();
</script>
</body>
</html>`))

// handleForm handles GET /, serving the interactive calculator
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Execute(w, struct{ Version string }{Version: s.version})
}
