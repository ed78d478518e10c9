package httpx

const homeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Ride Agent Demo</title>
  <style>
    body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial; margin: 24px; }
    .card { max-width: 900px; border: 1px solid #ddd; border-radius: 14px; padding: 18px; }
    label { display: block; font-weight: 600; margin-top: 12px; }
    input, select { width: 100%; padding: 10px 12px; margin-top: 6px; border: 1px solid #ccc; border-radius: 10px; font-size: 14px; }
    button { margin-top: 14px; padding: 10px 14px; border: 0; border-radius: 10px; font-weight: 700; cursor: pointer; }
    pre { white-space: pre-wrap; word-wrap: break-word; background: #f7f7f7; padding: 14px; border-radius: 12px; border: 1px solid #eee; }
    .small { color: #555; font-size: 13px; }
  </style>
</head>
<body>
  <div class="card">
    <h1 style="margin:0 0 8px 0;">Ride Agent</h1>
    <div class="small">Enter a pickup &amp; dropoff location. This demo always returns a result using a mock quote fallback.</div>

    <label for="pickup">Pickup location</label>
    <input id="pickup" placeholder="e.g., Chicago O'Hare Airport" />

    <label for="dropoff">Dropoff location</label>
    <input id="dropoff" placeholder="e.g., Navy Pier, Chicago" />

    <label for="need">Vehicle need</label>
    <select id="need">
      <option value="cheapest" selected>cheapest</option>
      <option value="XL">XL</option>
      <option value="black">black</option>
      <option value="lux">lux</option>
      <option value="6 seats">6 seats</option>
    </select>

    <button onclick="run()">Run</button>

    <h3 style="margin:18px 0 8px 0;">Output</h3>
    <pre id="out">Ready.</pre>

    <div class="small" style="margin-top:12px;">
      Tip: You can also call <code>/run-text?pickup=...&amp;dropoff=...</code> for plain text.
    </div>
  </div>

<script>
async function run(){
  const pickup = document.getElementById('pickup').value.trim();
  const dropoff = document.getElementById('dropoff').value.trim();
  const vehicle_need = document.getElementById('need').value;

  const out = document.getElementById('out');
  if(!pickup || !dropoff){ out.textContent = 'Please enter both pickup and dropoff.'; return; }

  out.textContent = 'Running...';
  try{
    const r = await fetch('/run-text', {
      method: 'POST',
      headers: {'Content-Type':'application/json'},
      body: JSON.stringify({pickup, dropoff, vehicle_need})
    });
    const t = await r.text();
    out.textContent = t;
  }catch(e){
    out.textContent = 'Error: ' + (e?.message ?? String(e));
  }
}
</script>
</body>
</html>`
